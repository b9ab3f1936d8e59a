package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sureshreddy197/fuzzy-engine/pkg/types"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the recognized configuration method names",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("defuzzification: %s, %s, %s, %s, %s\n",
			types.Centroid, types.Bisector, types.MeanOfMax, types.SmallestOfMax, types.LargestOfMax)
		fmt.Printf("and:             %s, %s\n", types.ANDMin, types.ANDProduct)
		fmt.Printf("or:              %s, %s, %s\n", types.ORMax, types.ORSum, types.ORProbor)
		fmt.Printf("implication:     %s, %s\n", types.ImplicationMin, types.ImplicationProduct)
		fmt.Printf("aggregation:     %s, %s\n", types.AggregationMax, types.AggregationSum)
		fmt.Println("\nUnrecognized names fall back to centroid, min and max respectively.")
	},
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}
