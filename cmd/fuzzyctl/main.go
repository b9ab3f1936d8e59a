// fuzzyctl evaluates the built-in fan-speed controller, a worked example of
// the Mamdani inference pipeline. The system is assembled in code; there is
// no rule parsing.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fuzzyctl",
	Short: "Mamdani fuzzy inference demo",
	Long: `fuzzyctl ships a temperature -> fan speed controller built on the
fuzzy inference engine: three linguistic terms per variable, three rules,
and configurable AND/OR/implication/aggregation/defuzzification methods.`,
	SilenceUsage: true,
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
