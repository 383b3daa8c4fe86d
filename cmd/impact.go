package cmd

import (
	"github.com/spf13/cobra"
)

var impactCritical bool

var impactCmd = &cobra.Command{
	Use:   "impact <service>",
	Short: "Show which services a change would affect",
	Long: `Impact lists every service that directly or transitively depends on
the named service, with the dependency chain that connects them. With
--critical only services connected through required dependencies are shown:
those are the ones a breaking change is guaranteed to hit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager()
		if err != nil {
			return err
		}

		target := args[0]
		analyze := m.Impact
		if impactCritical {
			analyze = m.CriticalImpact
		}
		infos, err := analyze(target)
		if err != nil {
			return err
		}

		return newOutputFormatter().Impact(target, infos)
	},
}

func init() {
	impactCmd.Flags().BoolVar(&impactCritical, "critical", false,
		"Only show services connected through required dependencies")
	rootCmd.AddCommand(impactCmd)
}
