package types

// Fuzzified records the fuzzification of one crisp input: the value supplied
// by the caller and the degree of every term of the matched input variable.
type Fuzzified struct {
	Variable string             `json:"variable"`
	Input    float64            `json:"input"`
	Degrees  map[string]float64 `json:"degrees"`
}

// Contribution is one consequent entry of a fired rule: the implied strength
// applied to the named output term.
type Contribution struct {
	Variable string  `json:"variable"`
	Term     string  `json:"term"`
	Strength float64 `json:"strength"`
}

// RuleTrace records the evaluation of one rule: its firing strength after
// AND/OR combination and weighting, and the contributions it produced.
type RuleTrace struct {
	Rule          Rule           `json:"rule"`
	Strength      float64        `json:"strength"`
	Contributions []Contribution `json:"contributions"`
}

// Result is the verbose output of one evaluation. It is built fresh per
// call and never mutated afterwards; slices are in registration order so
// repeated evaluations of the same configuration produce identical traces.
type Result struct {
	Outputs       map[string]float64 `json:"outputs"`
	Fuzzification []Fuzzified        `json:"fuzzification"`
	Rules         []RuleTrace        `json:"rules"`

	// Aggregated holds the combined membership function per output
	// variable, as handed to the defuzzifier.
	Aggregated map[string]Membership `json:"-"`
}
