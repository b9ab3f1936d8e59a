package types

// Membership is the contract every fuzzy set satisfies: a pure, total
// mapping from a crisp value to a degree of truth.
//
// Implementations must be side-effect free and deterministic; the sampling
// based algorithms in defuzz and operators call At many times for the same
// input and rely on stable answers. Producers are responsible for keeping
// the result in [0, 1] — the engine does not reclamp arbitrary functions.
type Membership interface {
	// At returns the degree to which x belongs to the set.
	At(x float64) float64
}

// MembershipFunc adapts a plain function to the Membership interface.
type MembershipFunc func(x float64) float64

func (f MembershipFunc) At(x float64) float64 { return f(x) }

// Range is a closed numeric interval [Min, Max].
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Midpoint returns (Min+Max)/2, the fallback crisp value for degenerate
// (zero-membership) defuzzification.
func (r Range) Midpoint() float64 { return (r.Min + r.Max) / 2 }

// Span returns Max-Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Valid reports whether Min <= Max.
func (r Range) Valid() bool { return r.Min <= r.Max }
