package engine

import (
	"sort"

	"github.com/sureshreddy197/fuzzy-engine/pkg/defuzz"
	"github.com/sureshreddy197/fuzzy-engine/pkg/operators"
	"github.com/sureshreddy197/fuzzy-engine/pkg/types"
)

// Evaluate runs the full pipeline and returns one crisp value per
// registered output variable. Inputs naming unregistered variables, or
// naming output variables, are ignored. Output variables no rule fired for
// defuzzify to their range midpoint.
//
// Evaluate is a pure function of (registry, configuration, inputs): it
// never mutates the engine and repeated calls with the same inputs return
// the same values.
func (e *Engine) Evaluate(inputs map[string]float64) map[string]float64 {
	return e.EvaluateVerbose(inputs).Outputs
}

// EvaluateVerbose runs the same pipeline as Evaluate and additionally
// returns the fuzzification records, per-rule firing strengths and
// contributions, and the aggregated membership function per output
// variable. Records follow registration order, so two evaluations of an
// unchanged engine produce identical traces.
func (e *Engine) EvaluateVerbose(inputs map[string]float64) *types.Result {
	fuzzified, records := e.fuzzify(inputs)
	traces, contributions := e.fireRules(fuzzified)

	outputs := make(map[string]float64)
	aggregated := make(map[string]types.Membership)
	for _, name := range e.order {
		v := e.variables[name]
		if v.Role != types.RoleOutput {
			continue
		}
		agg := e.aggregate(v, contributions[name])
		aggregated[name] = agg
		outputs[name] = defuzz.Defuzzify(e.config.Defuzzification, agg, v.Range, e.config.Resolution)
	}

	return &types.Result{
		Outputs:       outputs,
		Fuzzification: records,
		Rules:         traces,
		Aggregated:    aggregated,
	}
}

// fuzzify computes every term's degree for each crisp input that matches a
// registered input variable. Unmatched input names are skipped silently.
func (e *Engine) fuzzify(inputs map[string]float64) (map[string]types.Fuzzified, []types.Fuzzified) {
	byName := make(map[string]types.Fuzzified)
	var records []types.Fuzzified
	for _, name := range e.order {
		v := e.variables[name]
		if v.Role != types.RoleInput {
			continue
		}
		x, ok := inputs[name]
		if !ok {
			continue
		}
		degrees := make(map[string]float64, len(v.Terms))
		for term, m := range v.Terms {
			degrees[term] = m.At(x)
		}
		rec := types.Fuzzified{Variable: name, Input: x, Degrees: degrees}
		byName[name] = rec
		records = append(records, rec)
	}
	return byName, records
}

// fireRules computes each rule's firing strength and collects its
// contributions, grouped by output variable in rule registration order.
func (e *Engine) fireRules(fuzzified map[string]types.Fuzzified) ([]types.RuleTrace, map[string][]types.Contribution) {
	and := operators.TNormFor(e.config.AND)
	or := operators.SNormFor(e.config.OR)

	traces := make([]types.RuleTrace, 0, len(e.rules))
	contributions := make(map[string][]types.Contribution)
	for _, r := range e.rules {
		var clauses []float64
		for variable, terms := range r.Antecedent {
			rec, ok := fuzzified[variable]
			if !ok {
				// Variable not supplied as input: the clause is skipped,
				// not treated as zero.
				continue
			}
			degrees := make([]float64, 0, len(terms))
			for _, term := range terms {
				degrees = append(degrees, rec.Degrees[term])
			}
			if len(degrees) == 1 {
				clauses = append(clauses, degrees[0])
			} else {
				clauses = append(clauses, or(degrees))
			}
		}

		strength := 0.0
		if len(clauses) > 0 {
			strength = and(clauses) * r.EffectiveWeight()
		}

		contribs := make([]types.Contribution, 0, len(r.Consequent))
		for variable, term := range r.Consequent {
			contribs = append(contribs, types.Contribution{Variable: variable, Term: term, Strength: strength})
		}
		sort.Slice(contribs, func(i, j int) bool { return contribs[i].Variable < contribs[j].Variable })
		for _, c := range contribs {
			contributions[c.Variable] = append(contributions[c.Variable], c)
		}
		traces = append(traces, types.RuleTrace{Rule: r, Strength: strength, Contributions: contribs})
	}
	return traces, contributions
}

// aggregate applies implication to each contribution's base term and folds
// the implied functions into one membership function for the variable.
func (e *Engine) aggregate(v *types.Variable, contribs []types.Contribution) types.Membership {
	implied := make([]types.Membership, 0, len(contribs))
	for _, c := range contribs {
		base, ok := v.Term(c.Term)
		if !ok {
			// Cannot occur after rule validation; skipped defensively.
			continue
		}
		implied = append(implied, imply(base, c.Strength, e.config.Implication))
	}

	switch len(implied) {
	case 0:
		return types.MembershipFunc(func(float64) float64 { return 0 })
	case 1:
		return implied[0]
	}

	if e.config.Aggregation == types.AggregationSum {
		return types.MembershipFunc(func(x float64) float64 {
			s := 0.0
			for _, m := range implied {
				s += m.At(x)
			}
			if s > 1 {
				return 1
			}
			return s
		})
	}
	return types.MembershipFunc(func(x float64) float64 {
		best := 0.0
		for _, m := range implied {
			if d := m.At(x); d > best {
				best = d
			}
		}
		return best
	})
}

// imply shapes a consequent term by the rule's firing strength: min clips,
// product scales.
func imply(base types.Membership, strength float64, method types.ImplicationMethod) types.Membership {
	if method == types.ImplicationProduct {
		return types.MembershipFunc(func(x float64) float64 {
			return base.At(x) * strength
		})
	}
	return types.MembershipFunc(func(x float64) float64 {
		if d := base.At(x); d < strength {
			return d
		}
		return strength
	})
}
