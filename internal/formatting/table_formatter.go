package formatting

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"roster/internal/api"
	"roster/internal/dependency"
	"roster/internal/validation"
)

// tableFormatter renders rich tables via go-pretty.
type tableFormatter struct {
	out io.Writer
}

func (f *tableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *tableFormatter) Services(records []api.ServiceRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(f.out, "No services registered")
		return nil
	}

	t := f.createTable()
	t.AppendHeader(table.Row{"NAME", "VERSION", "TYPE", "STATE", "DEPENDENCIES", "OWNER"})
	for _, record := range records {
		deps := make([]string, 0, len(record.Dependencies))
		for _, dep := range record.Dependencies {
			label := dep.Target
			if dep.Required {
				label += " (required)"
			}
			deps = append(deps, label)
		}
		t.AppendRow(table.Row{
			record.Name,
			record.Version,
			string(record.ServiceType),
			string(record.Status.State),
			strings.Join(deps, ", "),
			record.Owner,
		})
	}
	t.Render()
	return nil
}

func (f *tableFormatter) Summary(summary *validation.ValidationSummary) error {
	t := f.createTable()
	t.AppendHeader(table.Row{"SERVICE", "RESULT", "DETAIL"})
	for _, name := range summary.Successful {
		detail := strings.Join(summary.WarningsFor(name), "; ")
		t.AppendRow(table.Row{name, "ok", detail})
	}
	for _, failed := range summary.Failed {
		t.AppendRow(table.Row{failed.Name, "failed", failed.Reason})
	}
	if systemWarnings := summary.WarningsFor(validation.SystemScope); len(systemWarnings) > 0 {
		t.AppendRow(table.Row{validation.SystemScope, "warning", strings.Join(systemWarnings, "; ")})
	}
	t.Render()

	fmt.Fprintf(f.out, "%d passed, %d failed (run %s)\n",
		summary.SuccessCount(), summary.FailureCount(), summary.RunID)
	return nil
}

func (f *tableFormatter) Order(title string, order []string) error {
	if len(order) == 0 {
		fmt.Fprintln(f.out, "Nothing to order")
		return nil
	}

	t := f.createTable()
	t.AppendHeader(table.Row{"#", title})
	for i, name := range order {
		t.AppendRow(table.Row{i + 1, name})
	}
	t.Render()
	return nil
}

func (f *tableFormatter) Impact(target string, infos []dependency.ImpactInfo) error {
	if len(infos) == 0 {
		fmt.Fprintf(f.out, "No services depend on %s\n", target)
		return nil
	}

	t := f.createTable()
	t.AppendHeader(table.Row{"SERVICE", "REQUIRED", "PATH"})
	for _, info := range infos {
		t.AppendRow(table.Row{
			info.Service,
			info.IsRequired,
			strings.Join(info.Path, " -> "),
		})
	}
	t.Render()
	return nil
}
