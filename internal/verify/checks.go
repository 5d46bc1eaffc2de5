package verify

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/aldergren/tempovec/internal/features"
	"github.com/aldergren/tempovec/internal/vector"
)

// Check is one threshold comparison in the verification sequence.
type Check struct {
	Name      string
	Value     float64
	Threshold float64
	// Below selects the comparison direction: pass when Value < Threshold
	// if true, pass when Value > Threshold otherwise.
	Below bool
	Pass  bool
}

// Result captures one verification run: the encoded vectors, the measured
// distances and the threshold checks.
type Result struct {
	RunID string

	Hour23 vector.Vector
	Hour0  vector.Vector
	Hour12 vector.Vector
	Dec    vector.Vector
	Jan    vector.Vector

	DistHour23To0  float64
	DistHour23To12 float64
	DistHour0To12  float64
	DistDecToJan   float64

	// LinearDistHour23To0 is what a naive linear hour/24 encoding yields
	// for the same adjacent pair; Improvement is linear over cyclical.
	LinearDistHour23To0 float64
	Improvement         float64

	// Sample vectors: weekday morning (8 AM, June) and weekend evening
	// (18:00, December).
	Morning vector.Vector
	Evening vector.Vector

	Checks []Check
}

// Run executes the fixed verification sequence for the cyclical encoder.
func Run() (*Result, error) {
	r := &Result{
		RunID:  uuid.New().String(),
		Hour23: features.EncodeCyclical(23, 6, false),
		Hour0:  features.EncodeCyclical(0, 6, false),
		Hour12: features.EncodeCyclical(12, 6, false),
		Dec:    features.EncodeCyclical(12, 12, false),
		Jan:    features.EncodeCyclical(12, 1, false),

		Morning: features.EncodeCyclical(8, 6, false),
		Evening: features.EncodeCyclical(18, 12, true),
	}

	var err error
	if r.DistHour23To0, err = vector.Euclidean(r.Hour23.HourComponents(), r.Hour0.HourComponents()); err != nil {
		return nil, fmt.Errorf("hour 23 vs 0: %w", err)
	}
	if r.DistHour23To12, err = vector.Euclidean(r.Hour23.HourComponents(), r.Hour12.HourComponents()); err != nil {
		return nil, fmt.Errorf("hour 23 vs 12: %w", err)
	}
	if r.DistHour0To12, err = vector.Euclidean(r.Hour0.HourComponents(), r.Hour12.HourComponents()); err != nil {
		return nil, fmt.Errorf("hour 0 vs 12: %w", err)
	}
	if r.DistDecToJan, err = vector.Euclidean(r.Dec.MonthComponents(), r.Jan.MonthComponents()); err != nil {
		return nil, fmt.Errorf("december vs january: %w", err)
	}

	r.LinearDistHour23To0 = 23.0 / 24.0
	r.Improvement = r.LinearDistHour23To0 / r.DistHour23To0

	r.Checks = []Check{
		check("Hour 23 and 0 are close", r.DistHour23To0, 0.3, true),
		check("Hour 0 and 12 are far", r.DistHour0To12, 1.5, false),
		check("December and January are close", r.DistDecToJan, 0.6, true),
	}

	return r, nil
}

func check(name string, value, threshold float64, below bool) Check {
	pass := value > threshold
	if below {
		pass = value < threshold
	}
	return Check{
		Name:      name,
		Value:     value,
		Threshold: threshold,
		Below:     below,
		Pass:      pass,
	}
}

// AllPassed reports whether every threshold check held.
func (r *Result) AllPassed() bool {
	for _, c := range r.Checks {
		if !c.Pass {
			return false
		}
	}
	return true
}
