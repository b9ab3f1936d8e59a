// Package hedges provides linguistic modifiers: one-line transforms that
// sharpen or soften an existing membership function.
package hedges

import (
	"math"

	"github.com/sureshreddy197/fuzzy-engine/pkg/types"
)

// Very squares the degree, concentrating membership around the core.
func Very(m types.Membership) types.Membership {
	return types.MembershipFunc(func(x float64) float64 {
		d := m.At(x)
		return d * d
	})
}

// Extremely cubes the degree.
func Extremely(m types.Membership) types.Membership {
	return types.MembershipFunc(func(x float64) float64 {
		d := m.At(x)
		return d * d * d
	})
}

// Somewhat takes the square root, diluting the set.
func Somewhat(m types.Membership) types.Membership {
	return types.MembershipFunc(func(x float64) float64 {
		return math.Sqrt(m.At(x))
	})
}

// Slightly takes the cube root, diluting further than Somewhat.
func Slightly(m types.Membership) types.Membership {
	return types.MembershipFunc(func(x float64) float64 {
		return math.Cbrt(m.At(x))
	})
}

// Intensify pushes degrees away from 0.5: squares below it, mirrored square
// above it, leaving the crossover fixed.
func Intensify(m types.Membership) types.Membership {
	return types.MembershipFunc(func(x float64) float64 {
		d := m.At(x)
		if d <= 0.5 {
			return 2 * d * d
		}
		return 1 - 2*(1-d)*(1-d)
	})
}

// Not complements the degree.
func Not(m types.Membership) types.Membership {
	return types.MembershipFunc(func(x float64) float64 {
		return 1 - m.At(x)
	})
}
