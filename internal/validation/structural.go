package validation

import (
	"fmt"
	"net/url"
	"strings"

	"roster/internal/api"
)

// StructuralValidator checks one service definition's own fields, without
// reference to the rest of the catalog. Implementations return hard
// problems; advisory findings are produced separately by TypeHeuristics.
type StructuralValidator interface {
	Validate(record api.ServiceRecord) []string
}

// FieldValidator is the built-in StructuralValidator. It checks the fields
// every definition must carry and the internal consistency of endpoints.
type FieldValidator struct{}

// Validate implements StructuralValidator.
func (FieldValidator) Validate(record api.ServiceRecord) []string {
	var problems []string

	if strings.TrimSpace(record.Name) == "" {
		problems = append(problems, "service name is required")
	}
	if strings.ContainsAny(record.Name, " \t/\\") {
		problems = append(problems, fmt.Sprintf("service name '%s' contains whitespace or path separators", record.Name))
	}
	if strings.TrimSpace(record.Version) == "" {
		problems = append(problems, "service version is required")
	}

	if record.DocumentationURL != "" {
		if u, err := url.Parse(record.DocumentationURL); err != nil || u.Scheme == "" {
			problems = append(problems, fmt.Sprintf("documentation URL '%s' is not a valid absolute URL", record.DocumentationURL))
		}
	}

	seen := make(map[string]bool, len(record.Endpoints))
	for i, ep := range record.Endpoints {
		if strings.TrimSpace(ep.Name) == "" {
			problems = append(problems, fmt.Sprintf("endpoint %d has no name", i))
			continue
		}
		if seen[ep.Name] {
			problems = append(problems, fmt.Sprintf("duplicate endpoint name '%s'", ep.Name))
		}
		seen[ep.Name] = true
		if ep.Path == "" {
			problems = append(problems, fmt.Sprintf("endpoint '%s' has no path", ep.Name))
		}
	}

	depSeen := make(map[string]bool, len(record.Dependencies))
	for _, dep := range record.Dependencies {
		if strings.TrimSpace(dep.Target) == "" {
			problems = append(problems, "dependency with empty target service")
			continue
		}
		if dep.Target == record.Name {
			problems = append(problems, fmt.Sprintf("service '%s' declares a dependency on itself", record.Name))
		}
		if depSeen[dep.Target] {
			problems = append(problems, fmt.Sprintf("duplicate dependency on '%s'", dep.Target))
		}
		depSeen[dep.Target] = true
	}

	return problems
}

// TypeHeuristics returns advisory findings based on the service type. These
// are always warnings: a definition that skips them is incomplete, not
// broken.
func TypeHeuristics(record api.ServiceRecord) []string {
	var findings []string

	switch record.ServiceType {
	case api.TypeRest:
		if len(record.Endpoints) == 0 {
			findings = append(findings, "rest service declares no endpoints")
		}
		for _, ep := range record.Endpoints {
			if ep.Method == "" {
				findings = append(findings, fmt.Sprintf("rest endpoint '%s' declares no HTTP method", ep.Name))
			}
		}
	case api.TypeGRPC:
		if !hasMetadata(record, "protoSources") {
			findings = append(findings, "grpc service declares no protoSources metadata")
		}
	case api.TypeGraphQL:
		if !hasMetadata(record, "schema") {
			findings = append(findings, "graphql service declares no schema metadata")
		}
	case api.TypeEventDriven:
		if !hasMetadata(record, "topics") {
			findings = append(findings, "event-driven service declares no topics metadata")
		}
	default:
		if record.Description == "" {
			findings = append(findings, fmt.Sprintf("service of type '%s' has no description", record.ServiceType))
		}
	}

	return findings
}

// hasMetadata reports whether the record carries a non-empty value for the
// metadata key. Empty strings and empty lists count as absent.
func hasMetadata(record api.ServiceRecord, key string) bool {
	value, ok := record.Metadata[key]
	if !ok || value == nil {
		return false
	}
	switch v := value.(type) {
	case string:
		return v != ""
	case []interface{}:
		return len(v) > 0
	default:
		return true
	}
}
