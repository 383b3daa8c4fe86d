package api

import "time"

// ServiceState represents the lifecycle state of a catalog entry.
type ServiceState string

const (
	// StateInactive means the service is registered but has not been validated yet.
	StateInactive ServiceState = "Inactive"
	// StateValidating means a validation pass is in flight for this service.
	StateValidating ServiceState = "Validating"
	// StateActive means the last validation pass succeeded.
	StateActive ServiceState = "Active"
	// StateError means the last validation pass produced a hard error.
	StateError ServiceState = "Error"
)

// ServiceType categorizes services for type-specific structural checks.
// Unrecognized values are allowed; they are treated as custom types.
type ServiceType string

const (
	TypeRest        ServiceType = "rest"
	TypeGRPC        ServiceType = "grpc"
	TypeGraphQL     ServiceType = "graphql"
	TypeEventDriven ServiceType = "event-driven"
)

// DependencySpec declares a dependency of one service on another.
type DependencySpec struct {
	// Target is the name of the service depended upon.
	Target string `json:"service" yaml:"service"`

	// VersionConstraint is the version the dependent expects of the target.
	// Empty means no version check is performed.
	VersionConstraint string `json:"versionConstraint,omitempty" yaml:"versionConstraint,omitempty"`

	// Required controls the failure policy: absence or major incompatibility
	// of a required dependency is a hard error, of an optional one a warning.
	Required bool `json:"required" yaml:"required"`
}

// Endpoint describes a single endpoint a service exposes.
type Endpoint struct {
	Name        string `json:"name" yaml:"name"`
	Path        string `json:"path" yaml:"path"`
	Method      string `json:"method,omitempty" yaml:"method,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ServiceStatus carries the outcome of the most recent validation pass.
type ServiceStatus struct {
	State        ServiceState `json:"state" yaml:"state"`
	ErrorMessage string       `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	Warnings     []string     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	LastChecked  time.Time    `json:"lastChecked" yaml:"lastChecked"`
}

// NewServiceStatus creates a status in the given state with a fresh timestamp.
func NewServiceStatus(state ServiceState) ServiceStatus {
	return ServiceStatus{
		State:       state,
		LastChecked: time.Now(),
	}
}

// WithError returns a copy of the status moved to StateError with the message set.
func (s ServiceStatus) WithError(message string) ServiceStatus {
	s.State = StateError
	s.ErrorMessage = message
	s.LastChecked = time.Now()
	return s
}

// WithWarnings returns a copy of the status with the warnings attached.
func (s ServiceStatus) WithWarnings(warnings []string) ServiceStatus {
	s.Warnings = warnings
	s.LastChecked = time.Now()
	return s
}

// ServiceRecord is a single catalog entry: a named, versioned service with
// its declared dependencies and configuration payload. Records are owned by
// the registry; analyses operate on snapshot copies.
type ServiceRecord struct {
	Name             string                 `json:"name" yaml:"name"`
	Version          string                 `json:"version" yaml:"version"`
	ServiceType      ServiceType            `json:"serviceType" yaml:"serviceType"`
	Description      string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Owner            string                 `json:"owner,omitempty" yaml:"owner,omitempty"`
	DocumentationURL string                 `json:"documentationUrl,omitempty" yaml:"documentationUrl,omitempty"`
	Endpoints        []Endpoint             `json:"endpoints,omitempty" yaml:"endpoints,omitempty"`
	Dependencies     []DependencySpec       `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	Status ServiceStatus `json:"status" yaml:"status"`
}

// Clone returns a deep enough copy of the record for snapshot use: the
// slices are copied so concurrent registry mutations cannot be observed by
// an analysis in flight. Metadata values are shared; analyses treat them as
// read-only.
func (r ServiceRecord) Clone() ServiceRecord {
	c := r
	if r.Dependencies != nil {
		c.Dependencies = make([]DependencySpec, len(r.Dependencies))
		copy(c.Dependencies, r.Dependencies)
	}
	if r.Endpoints != nil {
		c.Endpoints = make([]Endpoint, len(r.Endpoints))
		copy(c.Endpoints, r.Endpoints)
	}
	if r.Status.Warnings != nil {
		c.Status.Warnings = make([]string, len(r.Status.Warnings))
		copy(c.Status.Warnings, r.Status.Warnings)
	}
	return c
}
