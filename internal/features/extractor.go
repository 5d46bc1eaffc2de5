package features

import (
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/aldergren/tempovec/pkg/holiday"
)

// TimeSeries is the feature set extracted from one timestamp, used as
// model input for consumption and production forecasting.
type TimeSeries struct {
	// HourOfDay is 0-23.
	HourOfDay int
	// DayOfWeek is 0=Monday .. 6=Sunday.
	DayOfWeek int
	// DayOfMonth is 1-31.
	DayOfMonth int
	// Month is 1-12.
	Month int
	// IsWeekend is true on Saturday and Sunday.
	IsWeekend bool
	// IsHoliday is true on fixed-date public holidays.
	IsHoliday bool

	// Weather readings, nil until AddWeather is called.
	TemperatureC  *float64
	CloudCoverPct *float64
	WindSpeedMS   *float64

	// Season is 0=winter, 1=spring, 2=summer, 3=autumn.
	Season int
	// DayLengthHours is the time between sunrise and sunset.
	DayLengthHours float64
}

// Extractor derives time-series features for a fixed geographic location.
type Extractor struct {
	latitude  float64
	longitude float64
	calendar  *holiday.Calendar
}

// NewExtractor creates a feature extractor for a location. A nil calendar
// falls back to the embedded default.
func NewExtractor(latitude, longitude float64, calendar *holiday.Calendar) *Extractor {
	if calendar == nil {
		calendar = holiday.Default()
	}
	return &Extractor{
		latitude:  latitude,
		longitude: longitude,
		calendar:  calendar,
	}
}

// ExtractTemporal derives the temporal feature set from a timestamp.
// Weather fields are left unset.
func (e *Extractor) ExtractTemporal(t time.Time) TimeSeries {
	// time.Weekday counts from Sunday; shift so Monday is 0.
	dayOfWeek := (int(t.Weekday()) + 6) % 7

	return TimeSeries{
		HourOfDay:      t.Hour(),
		DayOfWeek:      dayOfWeek,
		DayOfMonth:     t.Day(),
		Month:          int(t.Month()),
		IsWeekend:      dayOfWeek >= 5,
		IsHoliday:      e.calendar.IsHoliday(t),
		Season:         seasonOf(int(t.Month())),
		DayLengthHours: e.dayLength(t),
	}
}

// AddWeather attaches weather readings to an extracted feature set.
func (e *Extractor) AddWeather(f TimeSeries, temperatureC, cloudCoverPct, windSpeedMS float64) TimeSeries {
	f.TemperatureC = &temperatureC
	f.CloudCoverPct = &cloudCoverPct
	f.WindSpeedMS = &windSpeedMS
	return f
}

// seasonOf maps month to meteorological season
// (0=winter, 1=spring, 2=summer, 3=autumn).
func seasonOf(month int) int {
	switch month {
	case 12, 1, 2:
		return 0
	case 3, 4, 5:
		return 1
	case 6, 7, 8:
		return 2
	default:
		return 3
	}
}

// dayLength computes hours between sunrise and sunset at the extractor's
// location. Above the polar circles suncalc yields no sunrise/sunset for
// parts of the year; those days count as 24h when the sun is up at solar
// noon and 0h otherwise.
func (e *Extractor) dayLength(t time.Time) float64 {
	times := suncalc.GetTimes(t, e.latitude, e.longitude)

	sunrise := times[suncalc.Sunrise].Value
	sunset := times[suncalc.Sunset].Value

	if !sunrise.IsZero() && !sunset.IsZero() {
		hours := sunset.Sub(sunrise).Hours()
		if hours > 0 && hours < 24 {
			return hours
		}
	}

	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
	position := suncalc.GetPosition(noon, e.latitude, e.longitude)
	if position.Altitude > 0 {
		return 24.0
	}
	return 0.0
}
