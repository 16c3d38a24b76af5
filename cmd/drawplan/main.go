package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "drawplan",
		Short: "Retirement withdrawal and Roth conversion planner",
		Long: `drawplan simulates a retirement plan year by year: withdrawals across
tax-deferred, taxable and Roth accounts, Roth conversions sized to the 12%
bracket and the IRMAA threshold, and the taxes both trigger.`,
	}

	rootCmd.AddCommand(
		newSimulateCmd(),
		newDefaultsCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("drawplan version %s\n", version)
		},
	}
}
