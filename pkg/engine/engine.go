// Package engine implements the Mamdani inference pipeline: fuzzification,
// rule evaluation, implication, aggregation and defuzzification over a
// registry of linguistic variables and rules.
package engine

import (
	"fmt"

	"github.com/sureshreddy197/fuzzy-engine/pkg/types"
)

// Config holds the method selectors and the sampling resolution applied to
// every subsequent evaluation. Unrecognized method names are resolved to
// the standard method (min / max / centroid) at lookup time rather than
// rejected.
type Config struct {
	Defuzzification types.DefuzzMethod
	AND             types.ANDMethod
	OR              types.ORMethod
	Implication     types.ImplicationMethod
	Aggregation     types.AggregationMethod
	Resolution      int
}

// DefaultConfig returns the standard Mamdani setup: centroid
// defuzzification, min/max norms, min implication, max aggregation, 100
// sampling subdivisions.
func DefaultConfig() Config {
	return Config{
		Defuzzification: types.Centroid,
		AND:             types.ANDMin,
		OR:              types.ORMax,
		Implication:     types.ImplicationMin,
		Aggregation:     types.AggregationMax,
		Resolution:      types.DefaultResolution,
	}
}

// Engine owns the variable registry, the rule set and the evaluation
// configuration. It has no lifecycle: registration calls and evaluations
// may be interleaved freely, and evaluation reads but never writes the
// registry.
//
// The Engine carries no locks. Concurrent Evaluate calls against the same
// instance are safe only while no registration or setter call is in flight;
// callers that mutate concurrently must serialize externally.
type Engine struct {
	variables map[string]*types.Variable
	order     []string
	rules     []types.Rule
	config    Config
}

// New returns an empty engine with DefaultConfig.
func New() *Engine {
	return &Engine{
		variables: make(map[string]*types.Variable),
		config:    DefaultConfig(),
	}
}

// AddVariable registers an input variable. The range is optional; when
// omitted it is estimated by probing the membership functions (see
// inferRange), which is a heuristic — explicit ranges are recommended.
// Re-registering a name replaces the previous variable.
func (e *Engine) AddVariable(name string, terms map[string]types.Membership, rng ...types.Range) {
	e.register(name, types.RoleInput, terms, rng)
}

// AddOutput registers an output variable, the target of rule consequents.
// Range semantics match AddVariable.
func (e *Engine) AddOutput(name string, terms map[string]types.Membership, rng ...types.Range) {
	e.register(name, types.RoleOutput, terms, rng)
}

func (e *Engine) register(name string, role types.Role, terms map[string]types.Membership, rng []types.Range) {
	v := &types.Variable{
		Name:  name,
		Role:  role,
		Terms: terms,
	}
	if len(rng) > 0 {
		v.Range = rng[0]
	} else {
		v.Range = inferRange(terms)
		v.RangeInferred = true
	}
	if _, exists := e.variables[name]; !exists {
		e.order = append(e.order, name)
	}
	e.variables[name] = v
}

// SetDefuzzification selects the defuzzification method.
func (e *Engine) SetDefuzzification(m types.DefuzzMethod) { e.config.Defuzzification = m }

// SetANDMethod selects the T-norm for antecedent combination.
func (e *Engine) SetANDMethod(m types.ANDMethod) { e.config.AND = m }

// SetORMethod selects the S-norm for multi-term antecedent clauses.
func (e *Engine) SetORMethod(m types.ORMethod) { e.config.OR = m }

// SetImplication selects how firing strength shapes a consequent term.
func (e *Engine) SetImplication(m types.ImplicationMethod) { e.config.Implication = m }

// SetAggregation selects how implied consequents are combined per output.
func (e *Engine) SetAggregation(m types.AggregationMethod) { e.config.Aggregation = m }

// SetResolution sets the sampling subdivision count. Non-positive values
// are ignored.
func (e *Engine) SetResolution(n int) {
	if n > 0 {
		e.config.Resolution = n
	}
}

// Config returns the current configuration.
func (e *Engine) Config() Config { return e.config }

// GetMembership returns the registered membership function for one term.
func (e *Engine) GetMembership(variable, term string) (types.Membership, error) {
	v, ok := e.variables[variable]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownVariable, variable)
	}
	m, ok := v.Term(term)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no term %q", types.ErrUnknownTerm, variable, term)
	}
	return m, nil
}

// GetMemberships returns a copy of the term map for one variable.
func (e *Engine) GetMemberships(variable string) (map[string]types.Membership, error) {
	v, ok := e.variables[variable]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownVariable, variable)
	}
	terms := make(map[string]types.Membership, len(v.Terms))
	for name, m := range v.Terms {
		terms[name] = m
	}
	return terms, nil
}

// GetVariables returns all registered variables in registration order.
func (e *Engine) GetVariables() []types.Variable {
	vars := make([]types.Variable, 0, len(e.order))
	for _, name := range e.order {
		vars = append(vars, *e.variables[name])
	}
	return vars
}

// GetRules returns a copy of the rule set in registration order.
func (e *Engine) GetRules() []types.Rule {
	rules := make([]types.Rule, len(e.rules))
	copy(rules, e.rules)
	return rules
}

// Range-inference probe points and threshold. The heuristic starts from a
// [0, 100] window and widens it to cover any probe point where some term's
// membership exceeds the threshold. Functions whose support misses every
// probe point, or sits inside [0, 100], keep the default window; that
// imprecision is accepted, observable behavior.
var probePoints = []float64{-1000, -100, -10, 0, 10, 100, 1000}

const probeThreshold = 0.01

func inferRange(terms map[string]types.Membership) types.Range {
	r := types.Range{Min: 0, Max: 100}
	for _, m := range terms {
		for _, p := range probePoints {
			if m.At(p) > probeThreshold {
				if p < r.Min {
					r.Min = p
				}
				if p > r.Max {
					r.Max = p
				}
			}
		}
	}
	return r
}
