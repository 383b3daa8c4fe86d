package cmd

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the whole catalog",
	Long: `Validate runs a full validation pass over every stored service
definition: dependency policy (missing targets, version compatibility),
structural checks and cycle detection. The exit code is non-zero when any
service fails hard; warnings alone do not fail the run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager()
		if err != nil {
			return err
		}

		summary := m.ValidateCatalog()
		if err := newOutputFormatter().Summary(summary); err != nil {
			return err
		}
		if !summary.IsSuccessful() {
			return &validationFailedError{failures: summary.FailureCount()}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
