package cmd

import (
	"errors"
	"testing"

	"roster/internal/api"
)

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")
	if rootCmd.Version != "1.2.3-test" {
		t.Errorf("Version = %s, want 1.2.3-test", rootCmd.Version)
	}
	if GetVersion() != "1.2.3-test" {
		t.Errorf("GetVersion = %s", GetVersion())
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "roster" {
		t.Errorf("Use = %s, want roster", rootCmd.Use)
	}
	if !rootCmd.SilenceUsage {
		t.Error("SilenceUsage should be true")
	}

	var names []string
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"add", "validate", "order", "impact", "list", "delete", "watch", "version"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %s not registered (have %v)", want, names)
		}
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"generic error", errors.New("boom"), ExitCodeError},
		{"validation failure", &validationFailedError{failures: 2}, ExitCodeValidationFailed},
		{"not found", api.NewServiceNotFoundError("ghost"), ExitCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getExitCode(tt.err); got != tt.want {
				t.Errorf("getExitCode = %d, want %d", got, tt.want)
			}
		})
	}
}
