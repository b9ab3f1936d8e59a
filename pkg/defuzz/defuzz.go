// Package defuzz converts an aggregated membership function over a numeric
// range into one crisp value. All five algorithms sample the function at
// resolution evenly spaced steps across the range, both ends included, and
// are pure functions of (function, range, resolution).
package defuzz

import (
	"math"

	"github.com/sureshreddy197/fuzzy-engine/pkg/types"
)

// maxTolerance bounds how far a sampled degree may sit below the maximum and
// still count as "at the maximum" for MeanOfMax.
const maxTolerance = 1e-10

// Defuzzify dispatches on the method name. Unrecognized names fall back to
// Centroid; the permissive default exists because the name normally comes
// from the types.DefuzzMethod constants and a typo should not abort an
// evaluation pipeline mid-run.
func Defuzzify(method types.DefuzzMethod, m types.Membership, r types.Range, resolution int) float64 {
	switch method {
	case types.Bisector:
		return BisectorOfArea(m, r, resolution)
	case types.MeanOfMax:
		return MeanOfMax(m, r, resolution)
	case types.SmallestOfMax:
		return SmallestOfMax(m, r, resolution)
	case types.LargestOfMax:
		return LargestOfMax(m, r, resolution)
	default:
		return Centroid(m, r, resolution)
	}
}

// Centroid returns the center of gravity Σ(x·μ(x)) / Σμ(x) of the sampled
// function. A function with no membership anywhere (an untriggered output)
// defuzzifies to the range midpoint instead of dividing by zero.
func Centroid(m types.Membership, r types.Range, resolution int) float64 {
	if resolution <= 0 {
		return r.Midpoint()
	}
	step := r.Span() / float64(resolution)
	if step <= 0 {
		return r.Midpoint()
	}
	var num, den float64
	for x := r.Min; x <= r.Max; x += step {
		mu := m.At(x)
		num += x * mu
		den += mu
	}
	if den == 0 {
		return r.Midpoint()
	}
	return num / den
}

// BisectorOfArea returns the x at which the accumulated area under the
// sampled curve first reaches half the total area. Zero total area maps to
// the midpoint; if rounding keeps the walk from reaching the half mark, the
// range maximum is returned.
func BisectorOfArea(m types.Membership, r types.Range, resolution int) float64 {
	if resolution <= 0 {
		return r.Midpoint()
	}
	step := r.Span() / float64(resolution)
	if step <= 0 {
		return r.Midpoint()
	}
	total := 0.0
	for x := r.Min; x <= r.Max; x += step {
		total += m.At(x) * step
	}
	if total == 0 {
		return r.Midpoint()
	}
	half := total / 2
	acc := 0.0
	for x := r.Min; x <= r.Max; x += step {
		acc += m.At(x) * step
		if acc >= half {
			return x
		}
	}
	return r.Max
}

// MeanOfMax returns the arithmetic mean of every sampled x whose degree is
// at the sampled maximum.
func MeanOfMax(m types.Membership, r types.Range, resolution int) float64 {
	if resolution <= 0 {
		return r.Midpoint()
	}
	step := r.Span() / float64(resolution)
	if step <= 0 {
		return r.Midpoint()
	}
	max := 0.0
	for x := r.Min; x <= r.Max; x += step {
		if mu := m.At(x); mu > max {
			max = mu
		}
	}
	if max == 0 {
		return r.Midpoint()
	}
	var sum float64
	var n int
	for x := r.Min; x <= r.Max; x += step {
		if math.Abs(m.At(x)-max) <= maxTolerance {
			sum += x
			n++
		}
	}
	if n == 0 {
		return r.Midpoint()
	}
	return sum / float64(n)
}

// SmallestOfMax returns the leftmost sampled x at the maximum degree: a
// single left-to-right scan keeping the first sample that strictly exceeds
// the running maximum.
func SmallestOfMax(m types.Membership, r types.Range, resolution int) float64 {
	if resolution <= 0 {
		return r.Midpoint()
	}
	step := r.Span() / float64(resolution)
	if step <= 0 {
		return r.Midpoint()
	}
	max := 0.0
	best := r.Min
	for x := r.Min; x <= r.Max; x += step {
		if mu := m.At(x); mu > max {
			max = mu
			best = x
		}
	}
	if max == 0 {
		return r.Midpoint()
	}
	return best
}

// LargestOfMax is the mirror of SmallestOfMax: a right-to-left scan, so the
// rightmost sample at the maximum degree wins.
func LargestOfMax(m types.Membership, r types.Range, resolution int) float64 {
	if resolution <= 0 {
		return r.Midpoint()
	}
	step := r.Span() / float64(resolution)
	if step <= 0 {
		return r.Midpoint()
	}
	max := 0.0
	best := r.Max
	for x := r.Max; x >= r.Min; x -= step {
		if mu := m.At(x); mu > max {
			max = mu
			best = x
		}
	}
	if max == 0 {
		return r.Midpoint()
	}
	return best
}
