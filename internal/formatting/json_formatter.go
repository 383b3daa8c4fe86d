package formatting

import (
	"encoding/json"
	"io"

	"roster/internal/api"
	"roster/internal/dependency"
	"roster/internal/validation"
)

// jsonFormatter renders indented JSON.
type jsonFormatter struct {
	out io.Writer
}

func (f *jsonFormatter) encode(v interface{}) error {
	enc := json.NewEncoder(f.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (f *jsonFormatter) Services(records []api.ServiceRecord) error {
	return f.encode(records)
}

func (f *jsonFormatter) Summary(summary *validation.ValidationSummary) error {
	return f.encode(summary)
}

func (f *jsonFormatter) Order(title string, order []string) error {
	return f.encode(map[string]interface{}{
		"order": order,
	})
}

func (f *jsonFormatter) Impact(target string, infos []dependency.ImpactInfo) error {
	return f.encode(map[string]interface{}{
		"target": target,
		"impact": infos,
	})
}
