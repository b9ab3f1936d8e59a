package types

// Role distinguishes input variables (fuzzified from crisp inputs) from
// output variables (targets of rule consequents).
type Role string

const (
	RoleInput  Role = "input"
	RoleOutput Role = "output"
)

// Variable is a linguistic variable: a named set of terms over a numeric
// range. Instances are registered with an Engine and treated as immutable
// afterwards.
type Variable struct {
	Name  string                `json:"name"`
	Role  Role                  `json:"role"`
	Range Range                 `json:"range"`
	Terms map[string]Membership `json:"-"`

	// RangeInferred marks variables whose range came from the probe-point
	// heuristic rather than from the caller.
	RangeInferred bool `json:"rangeInferred,omitempty"`
}

// Term returns the membership function for the named term, and whether it
// exists.
func (v *Variable) Term(name string) (Membership, bool) {
	m, ok := v.Terms[name]
	return m, ok
}
