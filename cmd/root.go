package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roster/internal/api"
	"roster/internal/catalog"
	"roster/internal/config"
	"roster/internal/formatting"
	"roster/pkg/logging"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeValidationFailed indicates the catalog validated with hard failures.
	ExitCodeValidationFailed = 2
	// ExitCodeNotFound indicates a named service or definition does not exist.
	ExitCodeNotFound = 3
)

var (
	rootConfigPath   string
	rootOutputFormat string
	rootDebug        bool
)

// rootCmd represents the base command for the roster application.
var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Dependency-aware service catalog",
	Long: `roster keeps a catalog of services and their declared dependencies.
It validates the catalog (missing dependencies, version compatibility,
cycles), computes safe start/stop orders and answers impact questions
("what breaks if this service changes?").`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logging.LevelWarn
		if rootDebug {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level)

		_, err := formatting.ParseFormat(rootOutputFormat)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config-path", "",
		"Custom configuration directory (default: user config dir)")
	rootCmd.PersistentFlags().StringVarP(&rootOutputFormat, "output", "o", "table",
		"Output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false,
		"Enable debug logging")
}

// SetVersion sets the version for the root command. Called from the main
// package to inject the build version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "roster version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode maps error types onto semantic exit codes for scripting.
func getExitCode(err error) int {
	var validationFailed *validationFailedError
	if errors.As(err, &validationFailed) {
		return ExitCodeValidationFailed
	}
	if api.IsNotFound(err) {
		return ExitCodeNotFound
	}
	return ExitCodeError
}

// validationFailedError signals hard validation failures to Execute without
// duplicating the summary output.
type validationFailedError struct {
	failures int
}

func (e *validationFailedError) Error() string {
	return fmt.Sprintf("catalog validation failed for %d service(s)", e.failures)
}

// newStorage creates the definition storage honoring --config-path.
func newStorage() *config.Storage {
	if rootConfigPath != "" {
		return config.NewStorageWithPath(rootConfigPath)
	}
	return config.NewStorage()
}

// loadManager builds a manager with every stored definition registered and
// validated.
func loadManager() (*catalog.Manager, error) {
	m := catalog.NewManager()
	if _, err := m.LoadFromStore(newStorage()); err != nil {
		return nil, err
	}
	return m, nil
}

// newOutputFormatter creates the formatter for the chosen output format.
func newOutputFormatter() formatting.Formatter {
	format, err := formatting.ParseFormat(rootOutputFormat)
	if err != nil {
		format = formatting.FormatTable
	}
	return formatting.NewFormatter(format, os.Stdout)
}
