// Package operators provides the T-norm (AND) and S-norm (OR) families used
// to combine membership degrees, and the pointwise set operations built on
// them. Every function here is pure: degrees in, degree out.
package operators

import "github.com/sureshreddy197/fuzzy-engine/pkg/types"

// TNorm combines a non-empty ordered sequence of degrees in [0,1] as a
// fuzzy AND.
type TNorm func(vals []float64) float64

// SNorm combines a non-empty ordered sequence of degrees in [0,1] as a
// fuzzy OR.
type SNorm func(vals []float64) float64

// Min is the Gödel T-norm, the default AND. Idempotent.
func Min(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Product is the algebraic product T-norm. It penalizes multiple weak
// premises more than Min; an empty sequence yields the multiplicative
// identity 1.
func Product(vals []float64) float64 {
	p := 1.0
	for _, v := range vals {
		p *= v
	}
	return p
}

// Lukasiewicz is the bounded-difference T-norm max(0, Σv - (n-1)).
func Lukasiewicz(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		s += v
	}
	if r := s - float64(len(vals)-1); r > 0 {
		return r
	}
	return 0
}

// Drastic is the drastic product: the minimum of the non-unity values when
// any value equals 1, otherwise 0 (or the single value itself when n=1).
func Drastic(vals []float64) float64 {
	if len(vals) == 1 {
		return vals[0]
	}
	hasOne := false
	for _, v := range vals {
		if v == 1 {
			hasOne = true
			break
		}
	}
	if !hasOne {
		return 0
	}
	m := 1.0
	for _, v := range vals {
		if v < m {
			m = v
		}
	}
	return m
}

// Max is the Gödel S-norm, the default OR. Idempotent.
func Max(vals []float64) float64 {
	m := 0.0
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}

// ProbOr is the algebraic (probabilistic) sum a+b-ab, folded left to right.
// It saturates toward 1 as evidence accumulates. The engine exposes it under
// both the "sum" and "probor" names.
func ProbOr(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		s = s + v - s*v
	}
	return s
}

// BoundedSum is the Łukasiewicz S-norm min(1, Σv).
func BoundedSum(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		s += v
	}
	if s > 1 {
		return 1
	}
	return s
}

// DrasticOr is the drastic sum: the maximum of the non-zero values when any
// value equals 0, otherwise 1 (or the single value itself when n=1).
func DrasticOr(vals []float64) float64 {
	if len(vals) == 1 {
		return vals[0]
	}
	hasZero := false
	for _, v := range vals {
		if v == 0 {
			hasZero = true
			break
		}
	}
	if !hasZero {
		return 1
	}
	m := 0.0
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}

// TNormFor resolves an AND method name, falling back to Min for any
// unrecognized name.
func TNormFor(method types.ANDMethod) TNorm {
	switch method {
	case types.ANDProduct:
		return Product
	default:
		return Min
	}
}

// SNormFor resolves an OR method name, falling back to Max for any
// unrecognized name.
func SNormFor(method types.ORMethod) SNorm {
	switch method {
	case types.ORSum, types.ORProbor:
		return ProbOr
	default:
		return Max
	}
}
