package features

import (
	"math"

	"github.com/aldergren/tempovec/internal/vector"
)

// EncodeCyclical maps hour-of-day, month and a weekend flag to a
// 5-dimensional feature vector using sin/cos projections onto the unit
// circle, so that values adjacent across a period boundary (23:00 and
// 00:00, December and January) stay numerically close.
//
// Hour uses period 24, month is zero-indexed before projection so that
// January maps to angle 0. Inputs are not validated: out-of-range values
// are projected onto the circle by the same formulas, which is
// mathematically valid even when semantically meaningless.
func EncodeCyclical(hourOfDay, month int, isWeekend bool) vector.Vector {
	hourAngle := 2 * math.Pi * float64(hourOfDay) / 24
	monthAngle := 2 * math.Pi * float64(month-1) / 12

	weekend := 0.0
	if isWeekend {
		weekend = 1.0
	}

	return vector.Vector{
		math.Sin(hourAngle),
		math.Cos(hourAngle),
		math.Sin(monthAngle),
		math.Cos(monthAngle),
		weekend,
	}
}
