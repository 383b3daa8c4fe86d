package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roster/internal/api"
	"roster/internal/config"
)

var addCmd = &cobra.Command{
	Use:   "add <definition-file>",
	Short: "Add or update a service definition",
	Long: `Add parses a YAML or JSON definition file, stores it in the config
directory and validates the service against the current catalog. An existing
definition with the same name is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading definition file: %w", err)
		}
		record, err := config.ParseDefinition(data)
		if err != nil {
			return err
		}

		m, err := loadManager()
		if err != nil {
			return err
		}

		var status api.ServiceStatus
		if _, getErr := m.Registry().Get(record.Name); getErr == nil {
			status, err = m.Update(record)
		} else {
			status, err = m.Register(record)
		}
		if err != nil {
			return err
		}

		if err := newStorage().Save(record); err != nil {
			return err
		}

		fmt.Printf("Added %s (state: %s)\n", record.Name, status.State)
		for _, warning := range status.Warnings {
			fmt.Printf("  warning: %s\n", warning)
		}
		if status.State == api.StateError {
			return fmt.Errorf("service %s failed validation: %s", record.Name, status.ErrorMessage)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
