package operators

import (
	"math"

	"github.com/sureshreddy197/fuzzy-engine/pkg/types"
)

// The set operations compose lazily: each returns a Membership that samples
// its operands at evaluation time rather than precomputing a table, so the
// result stays total over all of ℝ.

// Union returns the fuzzy union of a and b under the given OR method.
func Union(a, b types.Membership, method types.ORMethod) types.Membership {
	or := SNormFor(method)
	return types.MembershipFunc(func(x float64) float64 {
		return or([]float64{a.At(x), b.At(x)})
	})
}

// Intersection returns the fuzzy intersection of a and b under the given
// AND method.
func Intersection(a, b types.Membership, method types.ANDMethod) types.Membership {
	and := TNormFor(method)
	return types.MembershipFunc(func(x float64) float64 {
		return and([]float64{a.At(x), b.At(x)})
	})
}

// Complement returns 1 - a.
func Complement(a types.Membership) types.Membership {
	return types.MembershipFunc(func(x float64) float64 {
		return 1 - a.At(x)
	})
}

// Difference returns a ∩ ¬b under the given AND method.
func Difference(a, b types.Membership, method types.ANDMethod) types.Membership {
	return Intersection(a, Complement(b), method)
}

// AlphaCut returns the crisp indicator of {x : a(x) >= alpha}.
func AlphaCut(a types.Membership, alpha float64) types.Membership {
	return types.MembershipFunc(func(x float64) float64 {
		if a.At(x) >= alpha {
			return 1
		}
		return 0
	})
}

// StrongAlphaCut returns the crisp indicator of {x : a(x) > alpha}.
func StrongAlphaCut(a types.Membership, alpha float64) types.Membership {
	return types.MembershipFunc(func(x float64) float64 {
		if a.At(x) > alpha {
			return 1
		}
		return 0
	})
}

// Support returns the strong zero-cut of a: every x with nonzero membership.
func Support(a types.Membership) types.Membership {
	return StrongAlphaCut(a, 0)
}

// Core returns the 1-cut of a: every x with full membership.
func Core(a types.Membership) types.Membership {
	return AlphaCut(a, 1)
}

// subsetEps absorbs float rounding when comparing sampled degrees.
const subsetEps = 1e-9

// IsSubset samples r at resolution evenly spaced steps and reports whether
// a(x) <= b(x) holds at every sample. The check is approximate: it only
// sees the sampled points, so the answer depends on the chosen resolution.
func IsSubset(a, b types.Membership, r types.Range, resolution int) bool {
	if resolution <= 0 {
		return false
	}
	step := r.Span() / float64(resolution)
	for x := r.Min; x <= r.Max; x += step {
		if a.At(x) > b.At(x)+subsetEps {
			return false
		}
		if step == 0 {
			break
		}
	}
	return true
}

// IsEqual samples r at resolution evenly spaced steps and reports whether
// |a(x)-b(x)| <= tolerance at every sample. Like IsSubset it is a sampled
// approximation, not a set-theoretic proof.
func IsEqual(a, b types.Membership, r types.Range, resolution int, tolerance float64) bool {
	if resolution <= 0 {
		return false
	}
	step := r.Span() / float64(resolution)
	for x := r.Min; x <= r.Max; x += step {
		if math.Abs(a.At(x)-b.At(x)) > tolerance {
			return false
		}
		if step == 0 {
			break
		}
	}
	return true
}
