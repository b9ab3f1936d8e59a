package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sureshreddy197/fuzzy-engine/pkg/types"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	firedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func renderOutputs(w io.Writer, outputs map[string]float64) {
	fmt.Fprintln(w, headerStyle.Render("Outputs"))
	names := make([]string, 0, len(outputs))
	for name := range outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s %s\n",
			labelStyle.Render(name+":"),
			valueStyle.Render(fmt.Sprintf("%.2f", outputs[name])))
	}
}

func renderTrace(w io.Writer, res *types.Result) {
	fmt.Fprintln(w, headerStyle.Render("Fuzzification"))
	for _, fz := range res.Fuzzification {
		fmt.Fprintf(w, "  %s = %.2f\n", fz.Variable, fz.Input)
		terms := make([]string, 0, len(fz.Degrees))
		for term := range fz.Degrees {
			terms = append(terms, term)
		}
		sort.Strings(terms)
		for _, term := range terms {
			fmt.Fprintf(w, "    %s %.3f\n", labelStyle.Render(term+":"), fz.Degrees[term])
		}
	}

	fmt.Fprintln(w, headerStyle.Render("Rules"))
	for i, rt := range res.Rules {
		line := fmt.Sprintf("  [%d] %s -> %s  strength=%.3f",
			i+1, describeAntecedent(rt.Rule), describeConsequent(rt.Rule), rt.Strength)
		if rt.Strength > 0 {
			fmt.Fprintln(w, firedStyle.Render(line))
		} else {
			fmt.Fprintln(w, mutedStyle.Render(line))
		}
	}
}

func describeAntecedent(r types.Rule) string {
	clauses := make([]string, 0, len(r.Antecedent))
	for variable, terms := range r.Antecedent {
		clauses = append(clauses, fmt.Sprintf("%s is %s", variable, strings.Join(terms, " or ")))
	}
	sort.Strings(clauses)
	return strings.Join(clauses, " and ")
}

func describeConsequent(r types.Rule) string {
	parts := make([]string, 0, len(r.Consequent))
	for variable, term := range r.Consequent {
		parts = append(parts, fmt.Sprintf("%s is %s", variable, term))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
