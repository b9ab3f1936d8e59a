package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sureshreddy197/fuzzy-engine/pkg/types"
)

var (
	evalTemperature float64
	evalDefuzz      string
	evalAND         string
	evalOR          string
	evalImplication string
	evalAggregation string
	evalResolution  int
	evalVerbose     bool
	evalJSON        bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the fan controller for one temperature",
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().Float64VarP(&evalTemperature, "temperature", "t", 25, "crisp input temperature")
	evalCmd.Flags().StringVar(&evalDefuzz, "defuzz", string(types.Centroid), "defuzzification method (centroid|bisector|mom|som|lom)")
	evalCmd.Flags().StringVar(&evalAND, "and", string(types.ANDMin), "AND method (min|product)")
	evalCmd.Flags().StringVar(&evalOR, "or", string(types.ORMax), "OR method (max|sum|probor)")
	evalCmd.Flags().StringVar(&evalImplication, "implication", string(types.ImplicationMin), "implication method (min|product)")
	evalCmd.Flags().StringVar(&evalAggregation, "aggregation", string(types.AggregationMax), "aggregation method (max|sum)")
	evalCmd.Flags().IntVar(&evalResolution, "resolution", types.DefaultResolution, "sampling subdivisions")
	evalCmd.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "show fuzzification and rule traces")
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "emit the result as JSON")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	e, err := newFanController()
	if err != nil {
		return err
	}

	e.SetDefuzzification(types.DefuzzMethod(evalDefuzz))
	e.SetANDMethod(types.ANDMethod(evalAND))
	e.SetORMethod(types.ORMethod(evalOR))
	e.SetImplication(types.ImplicationMethod(evalImplication))
	e.SetAggregation(types.AggregationMethod(evalAggregation))
	e.SetResolution(evalResolution)

	slog.Debug("evaluating", "temperature", evalTemperature, "defuzz", evalDefuzz)

	inputs := map[string]float64{"temperature": evalTemperature}
	res := e.EvaluateVerbose(inputs)

	if evalJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Inputs map[string]float64 `json:"inputs"`
			*types.Result
		}{inputs, res})
	}

	if evalVerbose {
		renderTrace(os.Stdout, res)
	}
	renderOutputs(os.Stdout, res.Outputs)
	return nil
}
