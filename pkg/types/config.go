package types

// Method names recognized by the engine configuration. Unrecognized names
// are not rejected: each selector falls back to its standard method
// (min / max / centroid) at lookup time. The fallback is deliberate
// leniency, kept because the names normally come from these constants.

// DefuzzMethod selects a defuzzification algorithm.
type DefuzzMethod string

const (
	// Centroid is the center-of-gravity method, the default.
	Centroid DefuzzMethod = "centroid"

	// Bisector returns the x that splits the area under the curve in half.
	Bisector DefuzzMethod = "bisector"

	// MeanOfMax averages all x at the maximum membership degree.
	MeanOfMax DefuzzMethod = "mom"

	// SmallestOfMax returns the leftmost x at the maximum degree.
	SmallestOfMax DefuzzMethod = "som"

	// LargestOfMax returns the rightmost x at the maximum degree.
	LargestOfMax DefuzzMethod = "lom"
)

// ANDMethod selects the T-norm used to combine antecedent clauses.
type ANDMethod string

const (
	ANDMin     ANDMethod = "min"
	ANDProduct ANDMethod = "product"
)

// ORMethod selects the S-norm used to combine alternative terms.
type ORMethod string

const (
	ORMax ORMethod = "max"

	// ORSum and ORProbor both name the algebraic sum a+b-ab.
	ORSum    ORMethod = "sum"
	ORProbor ORMethod = "probor"
)

// ImplicationMethod maps a firing strength onto a consequent term.
type ImplicationMethod string

const (
	// ImplicationMin clips the consequent at the firing strength.
	ImplicationMin ImplicationMethod = "min"

	// ImplicationProduct scales the consequent by the firing strength.
	ImplicationProduct ImplicationMethod = "product"
)

// AggregationMethod combines implied consequents for one output variable.
type AggregationMethod string

const (
	AggregationMax AggregationMethod = "max"

	// AggregationSum adds the implied functions pointwise, capped at 1.
	AggregationSum AggregationMethod = "sum"
)

// DefaultResolution is the number of sampling subdivisions used for
// defuzzification when the caller has not configured one.
const DefaultResolution = 100
