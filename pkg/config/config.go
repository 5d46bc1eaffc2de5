package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

// Config holds the configuration for a tempovec command
type Config struct {
	// Service configuration
	ServiceName string
	LogLevel    string

	// Location for daylight-dependent features
	Latitude  float64
	Longitude float64

	// HolidayCalendar is a path to a YAML calendar file.
	// Empty means the embedded default calendar.
	HolidayCalendar string
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		ServiceName: "tempovec",
		LogLevel:    "info",
		// Stockholm coordinates
		Latitude:  59.3293,
		Longitude: 18.0686,
	}
}

// LoadFromEnv loads configuration from environment variables with TEMPOVEC_ prefix
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("TEMPOVEC_SERVICE_NAME"); v != "" {
		c.ServiceName = v
	}
	if v := os.Getenv("TEMPOVEC_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("TEMPOVEC_LATITUDE"); v != "" {
		if lat, err := strconv.ParseFloat(v, 64); err == nil {
			c.Latitude = lat
		}
	}
	if v := os.Getenv("TEMPOVEC_LONGITUDE"); v != "" {
		if lon, err := strconv.ParseFloat(v, 64); err == nil {
			c.Longitude = lon
		}
	}
	if v := os.Getenv("TEMPOVEC_HOLIDAY_CALENDAR"); v != "" {
		c.HolidayCalendar = v
	}
}

// LoadFromFlags parses command-line flags and overrides config values
func (c *Config) LoadFromFlags() {
	pflag.StringVar(&c.ServiceName, "service-name", c.ServiceName, "Service name")
	pflag.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Float64Var(&c.Latitude, "latitude", c.Latitude, "Geographic latitude for daylight calculation")
	pflag.Float64Var(&c.Longitude, "longitude", c.Longitude, "Geographic longitude for daylight calculation")
	pflag.StringVar(&c.HolidayCalendar, "holiday-calendar", c.HolidayCalendar, "Path to YAML holiday calendar (empty = built-in)")

	pflag.Parse()
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("Service name is required")
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("Latitude must be between -90 and 90")
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("Longitude must be between -180 and 180")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}
