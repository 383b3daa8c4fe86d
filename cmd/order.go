package cmd

import (
	"github.com/spf13/cobra"
)

var orderStop bool

var orderCmd = &cobra.Command{
	Use:   "order [service...]",
	Short: "Compute a safe start or stop order",
	Long: `Order resolves the named services plus everything they transitively
depend on into a start order (dependencies first). With --stop the order is
reversed so nothing is stopped while something still depends on it. Without
arguments the whole catalog is ordered.

A dependency cycle in the requested subgraph is a hard error: there is no
safe order for it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager()
		if err != nil {
			return err
		}

		var roots []string
		if len(args) > 0 {
			roots = args
		}

		title := "START ORDER"
		resolve := m.StartOrder
		if orderStop {
			title = "STOP ORDER"
			resolve = m.StopOrder
		}
		order, err := resolve(roots)
		if err != nil {
			return err
		}

		return newOutputFormatter().Order(title, order)
	},
}

func init() {
	orderCmd.Flags().BoolVar(&orderStop, "stop", false,
		"Compute the stop order (dependents first) instead of the start order")
	rootCmd.AddCommand(orderCmd)
}
