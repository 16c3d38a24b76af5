package main

import (
	"fmt"

	"github.com/drawplan/drawplan/internal/config"
	"github.com/drawplan/drawplan/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDefaultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print a starter plan YAML for a filing status",
		Long: `Defaults emits a complete plan file pre-filled with the application
defaults for the chosen filing status, including its base-year tax
brackets, standard deduction, IRMAA tier-0 threshold, Social Security
taxability thresholds and capital-gains breakpoints. Edit and feed it
back to "drawplan simulate".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			statusName, _ := cmd.Flags().GetString("status")
			status := domain.FilingStatus(statusName)
			if !status.Valid() {
				return fmt.Errorf("unsupported filing status %q (one of: %v)", statusName, domain.AllFilingStatuses)
			}

			data, err := yaml.Marshal(config.DefaultPlan(status))
			if err != nil {
				return fmt.Errorf("failed to render plan: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().String("status", string(domain.FilingSingle), "Filing status for the starter plan")
	return cmd
}
