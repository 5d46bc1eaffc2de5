package holiday

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed swedish.yaml
var defaultCalendarYAML []byte

// Entry is a fixed-date public holiday.
type Entry struct {
	Month int    `yaml:"month"`
	Day   int    `yaml:"day"`
	Name  string `yaml:"name"`
}

// Calendar holds the fixed-date public holidays for a region. Movable
// holidays (Easter, Midsummer) are not modeled.
type Calendar struct {
	Region   string  `yaml:"region"`
	Holidays []Entry `yaml:"holidays"`

	byDate map[[2]int]string
}

// Default returns the embedded Swedish holiday calendar.
func Default() *Calendar {
	cal, err := parse(defaultCalendarYAML)
	if err != nil {
		// Embedded calendar is validated by tests; a parse failure here
		// means a broken build.
		panic(fmt.Sprintf("embedded holiday calendar invalid: %v", err))
	}
	return cal
}

// Load reads a holiday calendar from a YAML file.
func Load(path string) (*Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar file: %w", err)
	}

	cal, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar YAML: %w", err)
	}

	return cal, nil
}

func parse(data []byte) (*Calendar, error) {
	var cal Calendar
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return nil, err
	}

	cal.byDate = make(map[[2]int]string, len(cal.Holidays))
	for _, e := range cal.Holidays {
		if e.Month < 1 || e.Month > 12 || e.Day < 1 || e.Day > 31 {
			return nil, fmt.Errorf("invalid holiday date %d-%d (%s)", e.Month, e.Day, e.Name)
		}
		cal.byDate[[2]int{e.Month, e.Day}] = e.Name
	}

	return &cal, nil
}

// IsHoliday reports whether t falls on a holiday in the calendar.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.byDate[[2]int{int(t.Month()), t.Day()}]
	return ok
}

// Lookup returns the holiday name for t, if any.
func (c *Calendar) Lookup(t time.Time) (string, bool) {
	name, ok := c.byDate[[2]int{int(t.Month()), t.Day()}]
	return name, ok
}
