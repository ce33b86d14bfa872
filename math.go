package phantom

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	deg2rad = math.Pi / 180
)

// linspace returns n evenly spaced samples over [start, end], inclusive.
func linspace(start, end float64, n int) []float64 {
	if n < 2 {
		panic("linspace needs at least two samples")
	}
	v := make([]float64, n)
	floats.Span(v, start, end)
	return v
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// relViolation returns the squared violation of lo <= v <= hi, normalized by scale.
func relViolation(v, lo, hi, scale float64) float64 {
	var excess float64
	if v < lo {
		excess = lo - v
	} else if v > hi {
		excess = v - hi
	}
	excess /= scale
	return excess * excess
}
