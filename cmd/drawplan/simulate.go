package main

import (
	"fmt"
	"os"

	"github.com/drawplan/drawplan/internal/calculation"
	"github.com/drawplan/drawplan/internal/config"
	"github.com/drawplan/drawplan/internal/output"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a plan file and print the year-by-year table",
		Long: `Simulate loads a plan YAML file, runs the withdrawal/tax engine from
the start age to the end age, and renders the result.

Examples:
  drawplan simulate --input plan.yaml
  drawplan simulate --input plan.yaml --format csv --output plan.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile, _ := cmd.Flags().GetString("input")
			format, _ := cmd.Flags().GetString("format")
			outputFile, _ := cmd.Flags().GetString("output")

			plan, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to load plan: %w", err)
			}

			engine := calculation.NewSimulationEngine()
			results, err := engine.Simulate(plan)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown output format %q", format)
			}
			data, err := formatter.Format(results)
			if err != nil {
				return fmt.Errorf("failed to format results: %w", err)
			}

			if outputFile == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outputFile, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputFile)
			return nil
		},
	}

	cmd.Flags().String("input", "plan.yaml", "Plan YAML file to simulate")
	cmd.Flags().String("format", "console", "Output format: console, csv or json")
	cmd.Flags().String("output", "", "Write output to a file instead of stdout")
	return cmd
}
