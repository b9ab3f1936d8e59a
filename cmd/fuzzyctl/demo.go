package main

import (
	"fmt"

	"github.com/sureshreddy197/fuzzy-engine/pkg/engine"
	"github.com/sureshreddy197/fuzzy-engine/pkg/shapes"
	"github.com/sureshreddy197/fuzzy-engine/pkg/types"
)

// newFanController assembles the demo system: temperature in [0, 100]
// described by cold/warm/hot, fan speed in [0, 100] described by
// low/medium/high, one rule per pairing.
func newFanController() (*engine.Engine, error) {
	cold, err := shapes.NewTrapezoidal(0, 0, 20, 40)
	if err != nil {
		return nil, fmt.Errorf("cold: %w", err)
	}
	warm, err := shapes.NewTriangular(30, 50, 70)
	if err != nil {
		return nil, fmt.Errorf("warm: %w", err)
	}
	hot, err := shapes.NewTrapezoidal(60, 80, 100, 100)
	if err != nil {
		return nil, fmt.Errorf("hot: %w", err)
	}
	low, err := shapes.NewTriangular(0, 25, 50)
	if err != nil {
		return nil, fmt.Errorf("low: %w", err)
	}
	medium, err := shapes.NewTriangular(25, 50, 75)
	if err != nil {
		return nil, fmt.Errorf("medium: %w", err)
	}
	high, err := shapes.NewTriangular(50, 75, 100)
	if err != nil {
		return nil, fmt.Errorf("high: %w", err)
	}

	e := engine.New()
	e.AddVariable("temperature", map[string]types.Membership{
		"cold": cold,
		"warm": warm,
		"hot":  hot,
	}, types.Range{Min: 0, Max: 100})
	e.AddOutput("fanSpeed", map[string]types.Membership{
		"low":    low,
		"medium": medium,
		"high":   high,
	}, types.Range{Min: 0, Max: 100})

	err = e.AddRules([]types.Rule{
		{
			Antecedent:  map[string][]string{"temperature": {"cold"}},
			Consequent:  map[string]string{"fanSpeed": "low"},
			Description: "cold room, slow fan",
		},
		{
			Antecedent:  map[string][]string{"temperature": {"warm"}},
			Consequent:  map[string]string{"fanSpeed": "medium"},
			Description: "comfortable room, moderate fan",
		},
		{
			Antecedent:  map[string][]string{"temperature": {"hot"}},
			Consequent:  map[string]string{"fanSpeed": "high"},
			Description: "hot room, fast fan",
		},
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}
