package formatting

import (
	"io"

	"gopkg.in/yaml.v3"

	"roster/internal/api"
	"roster/internal/dependency"
	"roster/internal/validation"
)

// yamlFormatter renders YAML documents.
type yamlFormatter struct {
	out io.Writer
}

func (f *yamlFormatter) encode(v interface{}) error {
	enc := yaml.NewEncoder(f.out)
	defer enc.Close()
	enc.SetIndent(2)
	return enc.Encode(v)
}

func (f *yamlFormatter) Services(records []api.ServiceRecord) error {
	return f.encode(records)
}

func (f *yamlFormatter) Summary(summary *validation.ValidationSummary) error {
	return f.encode(summary)
}

func (f *yamlFormatter) Order(title string, order []string) error {
	return f.encode(map[string]interface{}{
		"order": order,
	})
}

func (f *yamlFormatter) Impact(target string, infos []dependency.ImpactInfo) error {
	return f.encode(map[string]interface{}{
		"target": target,
		"impact": infos,
	})
}
