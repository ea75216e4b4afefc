// Package math2d holds the 2D vector and matrix algebra shared by the
// physics package. All comparisons go through Equal; accumulated floating
// error is expected everywhere.
package math2d

import (
	"math"
	"math/rand"
)

const (
	Pi      = math.Pi
	Epsilon = 0.0001
)

// Bias used when choosing a reference face so that near-equal
// separations do not flip between frames.
const (
	BiasRelative = 0.95
	BiasAbsolute = 0.01
)

// Equal reports whether a and b differ by at most Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func Sqr(a float64) float64 {
	return a * a
}

// Clamp limits a to [lo, hi].
func Clamp(lo, hi, a float64) float64 {
	if a < lo {
		return lo
	}
	if a > hi {
		return hi
	}
	return a
}

// Round rounds half away from zero.
func Round(a float64) int {
	return int(math.Round(a))
}

// Random returns a value in [lo, hi) drawn from rng.
func Random(rng *rand.Rand, lo, hi float64) float64 {
	return (hi-lo)*rng.Float64() + lo
}

// BiasGreaterThan reports whether a beats b by a margin, so that ties
// keep the current choice.
func BiasGreaterThan(a, b float64) bool {
	return a >= b*BiasRelative+a*BiasAbsolute
}
