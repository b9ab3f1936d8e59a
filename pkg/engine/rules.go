package engine

import (
	"fmt"

	"github.com/sureshreddy197/fuzzy-engine/pkg/types"
)

// AddRule validates r against the current registry and appends it to the
// rule set. Validation is fail-fast: an invalid rule is rejected here, never
// stored, and never surfaces later during evaluation.
func (e *Engine) AddRule(r types.Rule) error {
	if err := e.validateRule(r); err != nil {
		return err
	}
	e.rules = append(e.rules, r)
	return nil
}

// AddRules registers rules in order, stopping at the first invalid one.
// Rules validated before the failure stay registered.
func (e *Engine) AddRules(rules []types.Rule) error {
	for i, r := range rules {
		if err := e.AddRule(r); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}

// ClearRules drops every rule, leaving variables and configuration intact.
func (e *Engine) ClearRules() {
	e.rules = nil
}

func (e *Engine) validateRule(r types.Rule) error {
	for variable, terms := range r.Antecedent {
		v, ok := e.variables[variable]
		if !ok {
			return fmt.Errorf("%w: antecedent references %q", types.ErrUnknownVariable, variable)
		}
		if len(terms) == 0 {
			return fmt.Errorf("antecedent for %q names no terms", variable)
		}
		for _, term := range terms {
			if _, ok := v.Term(term); !ok {
				return fmt.Errorf("%w: antecedent references %q of variable %q", types.ErrUnknownTerm, term, variable)
			}
		}
	}
	for variable, term := range r.Consequent {
		v, ok := e.variables[variable]
		if !ok {
			return fmt.Errorf("%w: consequent references %q", types.ErrUnknownVariable, variable)
		}
		if v.Role != types.RoleOutput {
			return fmt.Errorf("%w: consequent references input variable %q", types.ErrNotAnOutput, variable)
		}
		if _, ok := v.Term(term); !ok {
			return fmt.Errorf("%w: consequent references %q of variable %q", types.ErrUnknownTerm, term, variable)
		}
	}
	return nil
}
