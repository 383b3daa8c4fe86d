package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered services",
	Long: `List shows every service in the catalog with its version, type,
validation state and declared dependencies.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager()
		if err != nil {
			return err
		}
		return newOutputFormatter().Services(m.Registry().List())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
