// Package formatting renders catalog data for the CLI in table, JSON and
// YAML forms. All formatters write to the writer they are created with so
// tests can capture output.
package formatting

import (
	"fmt"
	"io"

	"roster/internal/api"
	"roster/internal/dependency"
	"roster/internal/validation"
)

// OutputFormat represents the desired output format.
type OutputFormat string

const (
	FormatTable OutputFormat = "table" // rich table output
	FormatJSON  OutputFormat = "json"  // JSON output
	FormatYAML  OutputFormat = "yaml"  // YAML output
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatTable, FormatJSON, FormatYAML:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

// Formatter renders catalog data in one output format.
type Formatter interface {
	// Services renders the full record list.
	Services(records []api.ServiceRecord) error

	// Summary renders a validation pass outcome.
	Summary(summary *validation.ValidationSummary) error

	// Order renders a lifecycle order.
	Order(title string, order []string) error

	// Impact renders the impact set of the target service.
	Impact(target string, infos []dependency.ImpactInfo) error
}

// NewFormatter creates the formatter for the given format writing to out.
func NewFormatter(format OutputFormat, out io.Writer) Formatter {
	switch format {
	case FormatJSON:
		return &jsonFormatter{out: out}
	case FormatYAML:
		return &yamlFormatter{out: out}
	default:
		return &tableFormatter{out: out}
	}
}
