package features

import (
	"math"

	"github.com/aldergren/tempovec/internal/vector"
)

// Defaults used when weather readings are missing.
const (
	defaultTemperatureC  = 15.0
	defaultCloudCoverPct = 50.0
	defaultWindSpeedMS   = 5.0
)

// Linear normalizes the feature set to an 11-dimensional vector with each
// component scaled into [0, 1]. This is the naive encoding: hour 23 and
// hour 0 end up maximally far apart even though they are adjacent in time.
func (f TimeSeries) Linear() vector.Vector {
	return vector.Vector{
		float64(f.HourOfDay) / 24.0,
		float64(f.DayOfWeek) / 7.0,
		float64(f.DayOfMonth) / 31.0,
		float64(f.Month) / 12.0,
		flag(f.IsWeekend),
		flag(f.IsHoliday),
		orDefault(f.TemperatureC, defaultTemperatureC) / 40.0,
		orDefault(f.CloudCoverPct, defaultCloudCoverPct) / 100.0,
		orDefault(f.WindSpeedMS, defaultWindSpeedMS) / 30.0,
		float64(f.Season) / 4.0,
		f.DayLengthHours / 24.0,
	}
}

// Cyclical normalizes the feature set to a 12-dimensional vector whose
// periodic components are projected onto unit circles. The first five
// dimensions are exactly EncodeCyclical's layout; the remainder carry
// day-of-week sin/cos, the holiday flag, weather and day length.
func (f TimeSeries) Cyclical() vector.Vector {
	core := EncodeCyclical(f.HourOfDay, f.Month, f.IsWeekend)

	dowAngle := 2 * math.Pi * float64(f.DayOfWeek) / 7

	return append(core,
		math.Sin(dowAngle),
		math.Cos(dowAngle),
		flag(f.IsHoliday),
		orDefault(f.TemperatureC, defaultTemperatureC)/40.0,
		orDefault(f.CloudCoverPct, defaultCloudCoverPct)/100.0,
		orDefault(f.WindSpeedMS, defaultWindSpeedMS)/30.0,
		f.DayLengthHours/24.0,
	)
}

func flag(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
