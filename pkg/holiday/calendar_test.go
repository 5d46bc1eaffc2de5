package holiday

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCalendar(t *testing.T) {
	cal := Default()

	assert.Equal(t, "SE", cal.Region)
	assert.Len(t, cal.Holidays, 8)
}

func TestIsHoliday(t *testing.T) {
	cal := Default()

	tests := []struct {
		month   time.Month
		day     int
		holiday bool
	}{
		{time.January, 1, true},    // New Year's Day
		{time.January, 6, true},    // Epiphany
		{time.May, 1, true},        // Labour Day
		{time.June, 6, true},       // National Day
		{time.December, 24, true},  // Christmas Eve
		{time.December, 25, true},  // Christmas Day
		{time.December, 26, true},  // Boxing Day
		{time.December, 31, true},  // New Year's Eve
		{time.July, 4, false},
		{time.March, 15, false},
	}

	for _, tt := range tests {
		date := time.Date(2025, tt.month, tt.day, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.holiday, cal.IsHoliday(date), "%s %d", tt.month, tt.day)
	}
}

func TestLookup(t *testing.T) {
	cal := Default()

	name, ok := cal.Lookup(time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "National Day", name)

	_, ok = cal.Lookup(time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestLoadCalendar(t *testing.T) {
	data := []byte(`region: FI
holidays:
  - { month: 12, day: 6, name: "Independence Day" }
  - { month: 1, day: 1, name: "New Year's Day" }
`)
	path := filepath.Join(t.TempDir(), "finnish.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cal, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "FI", cal.Region)
	assert.True(t, cal.IsHoliday(time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC)))
	assert.False(t, cal.IsHoliday(time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("holidays: [not a mapping"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidDate(t *testing.T) {
	data := []byte(`region: XX
holidays:
  - { month: 13, day: 1, name: "Bad month" }
`)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
