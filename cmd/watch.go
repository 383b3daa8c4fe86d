package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"roster/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the config directory and revalidate on changes",
	Long: `Watch keeps running, watches the services directory for definition
changes and reruns full catalog validation whenever a file is added,
modified or removed. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		storage := newStorage()

		m, err := loadManager()
		if err != nil {
			return err
		}
		formatter := newOutputFormatter()
		if err := formatter.Summary(m.ValidateCatalog()); err != nil {
			return err
		}

		// The watch target must exist before fsnotify can attach to it.
		dir, err := storage.ServicesDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}

		watcher, err := config.NewWatcher(storage, 500*time.Millisecond)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		changes := make(chan config.ChangeEvent, 16)
		if err := watcher.Start(ctx, changes); err != nil {
			return err
		}
		defer watcher.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case event := <-changes:
				fmt.Printf("definition %s changed, revalidating\n", event.Name)
				// Reload from scratch: files may have been added or removed.
				m, err = loadManager()
				if err != nil {
					return err
				}
				if err := formatter.Summary(m.ValidateCatalog()); err != nil {
					return err
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
