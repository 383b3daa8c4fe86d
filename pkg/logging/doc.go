// Package logging provides a structured logging system for roster built on
// Go's standard slog package.
//
// All log entries carry a subsystem identifier so that output from the
// registry, the validation orchestrator, the config store and the CLI can be
// told apart. Levels follow the usual Debug/Info/Warn/Error ladder and are
// filtered by the handler configured at startup.
//
// Initialize once at application startup:
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//
// and log with a subsystem string:
//
//	logging.Info("Registry", "Registered service: %s", name)
//	logging.Error("Validation", err, "Catalog validation failed")
package logging
