package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/provlabs/datedirs/cmd/irsim/scenario"
)

// RunCmd executes a scenario file and prints its report.
func RunCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "run <scenario.yaml>",
		Short:   "Run a scenario and report fills, accrued interest and settlement cashflows",
		Args:    cobra.ExactArgs(1),
		Example: "irsim run scenario.yaml --output json",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings(v)
			if err != nil {
				return err
			}
			logger, err := NewLogger(cmd.ErrOrStderr(), settings)
			if err != nil {
				return err
			}

			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			if settings.StartTime > 0 {
				sc.StartTime = settings.StartTime
			}

			report, err := scenario.Run(logger, *sc)
			if err != nil {
				return err
			}
			if settings.Output == "json" {
				return report.WriteJSON(cmd.OutOrStdout())
			}
			return report.WriteText(cmd.OutOrStdout())
		},
	}
}

// ValidateCmd checks a scenario file without running it.
func ValidateCmd(_ *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario.yaml>",
		Short: "Validate a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "scenario %q is valid: %d accounts, %d steps\n", sc.Name, len(sc.Accounts), len(sc.Steps))
			return err
		},
	}
}

// ExampleCmd prints a sample scenario, optionally writing it to a file.
func ExampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example [file]",
		Short: "Print a sample scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := yaml.Marshal(scenario.Example())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				_, err = cmd.OutOrStdout().Write(bz)
				return err
			}
			return os.WriteFile(args[0], bz, 0o644)
		},
	}
	return cmd
}
