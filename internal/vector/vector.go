package vector

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrDimensionMismatch is returned when two vectors of different lengths
// are combined. Mismatched pairs are rejected, never truncated.
var ErrDimensionMismatch = errors.New("vector dimension mismatch")

// Vector is an ordered sequence of float64 feature values.
//
// The 5-dimensional cyclical layout produced by features.EncodeCyclical:
// [0-1]: hour sin/cos
// [2-3]: month sin/cos
// [4]:   weekend flag (1.0 or 0.0)
type Vector []float64

// HourComponents returns the hour-of-day sin/cos pair (indices 0-1).
func (v Vector) HourComponents() Vector {
	return v[0:2]
}

// MonthComponents returns the month-of-year sin/cos pair (indices 2-3).
func (v Vector) MonthComponents() Vector {
	return v[2:4]
}

// Euclidean computes the L2 distance between two equal-length vectors.
func Euclidean(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	return floats.Distance(a, b, 2), nil
}

// Cosine computes the cosine similarity between two equal-length vectors.
// A zero-magnitude operand yields similarity 0.
func Cosine(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	dot := floats.Dot(a, b)
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (normA * normB), nil
}

// Norm returns the L2 norm of v.
func Norm(v Vector) float64 {
	return floats.Norm(v, 2)
}

// Normalize returns a unit-length copy of v. A zero vector is returned
// unchanged.
func Normalize(v Vector) Vector {
	norm := Norm(v)
	if norm == 0 {
		return v
	}

	normalized := make(Vector, len(v))
	for i, x := range v {
		normalized[i] = x / norm
	}
	return normalized
}
