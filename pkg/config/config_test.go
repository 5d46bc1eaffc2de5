package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "tempovec", cfg.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.InDelta(t, 59.3293, cfg.Latitude, 1e-6)
	assert.InDelta(t, 18.0686, cfg.Longitude, 1e-6)
	assert.Empty(t, cfg.HolidayCalendar)
}

func TestDefaultsValidate(t *testing.T) {
	// A fresh config must work with no env and no flags
	require.NoError(t, NewConfig().Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TEMPOVEC_SERVICE_NAME", "unit-test")
	t.Setenv("TEMPOVEC_LOG_LEVEL", "debug")
	t.Setenv("TEMPOVEC_LATITUDE", "60.1695")
	t.Setenv("TEMPOVEC_LONGITUDE", "24.9354")
	t.Setenv("TEMPOVEC_HOLIDAY_CALENDAR", "/etc/tempovec/holidays.yaml")

	cfg := NewConfig()
	cfg.LoadFromEnv()

	assert.Equal(t, "unit-test", cfg.ServiceName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.InDelta(t, 60.1695, cfg.Latitude, 1e-6)
	assert.InDelta(t, 24.9354, cfg.Longitude, 1e-6)
	assert.Equal(t, "/etc/tempovec/holidays.yaml", cfg.HolidayCalendar)
}

func TestLoadFromEnvIgnoresUnparseable(t *testing.T) {
	t.Setenv("TEMPOVEC_LATITUDE", "not-a-number")

	cfg := NewConfig()
	cfg.LoadFromEnv()

	assert.InDelta(t, 59.3293, cfg.Latitude, 1e-6, "bad value keeps the default")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty service name", func(c *Config) { c.ServiceName = "" }, true},
		{"latitude too high", func(c *Config) { c.Latitude = 91 }, true},
		{"latitude too low", func(c *Config) { c.Latitude = -91 }, true},
		{"longitude too high", func(c *Config) { c.Longitude = 181 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
