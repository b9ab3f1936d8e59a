package types

// Rule relates input terms to output terms.
//
// Each antecedent entry maps an input variable name to one or more of its
// term names; multiple terms are combined with the engine's OR method. Each
// consequent entry maps an output variable name to exactly one term name.
// Weight scales the firing strength; nil means unweighted (1). An explicit
// weight of 0 silences the rule without removing it.
type Rule struct {
	Antecedent  map[string][]string `json:"antecedent"`
	Consequent  map[string]string   `json:"consequent"`
	Weight      *float64            `json:"weight,omitempty"`
	Description string              `json:"description,omitempty"`
}

// Weighted returns a copy of w for use as a Rule weight.
func Weighted(w float64) *float64 { return &w }

// EffectiveWeight returns the rule's weight, defaulting to 1.
func (r Rule) EffectiveWeight() float64 {
	if r.Weight == nil {
		return 1
	}
	return *r.Weight
}
