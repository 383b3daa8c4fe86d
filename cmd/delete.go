package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"roster/internal/api"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <service>",
	Short: "Delete a service from the catalog",
	Long: `Delete removes a service definition from the catalog and the config
directory. Deletion is refused when other services require the service;
--force overrides the check. The affected dependents are printed either way.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager()
		if err != nil {
			return err
		}

		name := args[0]
		impact, err := m.Delete(name, deleteForce)
		if err != nil {
			return err
		}

		storage := newStorage()
		if err := storage.Delete(name); err != nil && !api.IsNotFound(err) {
			return fmt.Errorf("service removed from catalog but definition file remains: %w", err)
		}

		fmt.Printf("Deleted %s\n", name)
		return newOutputFormatter().Impact(name, impact)
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false,
		"Delete even when other services require this one")
	rootCmd.AddCommand(deleteCmd)
}
