package validation

import (
	"time"

	"github.com/google/uuid"
)

// FailedService is one hard-failed service and the reason it failed.
type FailedService struct {
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
}

// ValidationSummary is the outcome of one catalog-wide validation pass.
// Warnings are keyed by service name; catalog-scope findings such as
// dependency cycles use the key "system".
type ValidationSummary struct {
	RunID      string              `json:"runId" yaml:"runId"`
	Successful []string            `json:"successful" yaml:"successful"`
	Failed     []FailedService     `json:"failed" yaml:"failed"`
	Warnings   map[string][]string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Timestamp  time.Time           `json:"timestamp" yaml:"timestamp"`
}

// SystemScope is the warnings key for findings that belong to the catalog
// as a whole rather than to a single service.
const SystemScope = "system"

// NewValidationSummary creates an empty summary stamped with a fresh run id.
func NewValidationSummary() *ValidationSummary {
	return &ValidationSummary{
		RunID:     uuid.NewString(),
		Warnings:  make(map[string][]string),
		Timestamp: time.Now(),
	}
}

// AddSuccess records a service that passed validation.
func (s *ValidationSummary) AddSuccess(name string) {
	s.Successful = append(s.Successful, name)
}

// AddFailure records a hard-failed service with its reason.
func (s *ValidationSummary) AddFailure(name, reason string) {
	s.Failed = append(s.Failed, FailedService{Name: name, Reason: reason})
}

// AddWarning records a warning for the given scope (a service name or
// SystemScope).
func (s *ValidationSummary) AddWarning(scope, warning string) {
	s.Warnings[scope] = append(s.Warnings[scope], warning)
}

// SuccessCount returns the number of services that passed.
func (s *ValidationSummary) SuccessCount() int { return len(s.Successful) }

// FailureCount returns the number of services that hard-failed.
func (s *ValidationSummary) FailureCount() int { return len(s.Failed) }

// HasWarnings reports whether any scope accumulated warnings.
func (s *ValidationSummary) HasWarnings() bool { return len(s.Warnings) > 0 }

// IsSuccessful reports whether the pass completed without hard failures.
// Warnings do not affect the result.
func (s *ValidationSummary) IsSuccessful() bool { return len(s.Failed) == 0 }

// WarningsFor returns the warnings recorded for the given scope.
func (s *ValidationSummary) WarningsFor(scope string) []string {
	return s.Warnings[scope]
}
