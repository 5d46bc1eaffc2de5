package features

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds rolling statistics for one window position.
type WindowStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Lag builds lag features from a series: for each position with n prior
// values, a row [v[i-1], v[i-2], ..., v[i-n]]. len(values) <= n yields nil.
func Lag(values []float64, n int) [][]float64 {
	if n <= 0 || len(values) <= n {
		return nil
	}

	rows := make([][]float64, 0, len(values)-n)
	for i := n; i < len(values); i++ {
		row := make([]float64, n)
		for lag := 1; lag <= n; lag++ {
			row[lag-1] = values[i-lag]
		}
		rows = append(rows, row)
	}

	return rows
}

// Rolling computes mean/stddev/min/max over a sliding window. Windows
// shorter than the series length slide one step at a time; an oversized
// window yields nil.
func Rolling(values []float64, window int) []WindowStats {
	if window <= 0 || len(values) < window {
		return nil
	}

	stats := make([]WindowStats, 0, len(values)-window+1)
	for i := window; i <= len(values); i++ {
		w := values[i-window : i]
		stats = append(stats, WindowStats{
			Mean:   stat.Mean(w, nil),
			StdDev: stat.PopStdDev(w, nil),
			Min:    floats.Min(w),
			Max:    floats.Max(w),
		})
	}

	return stats
}
