package validation

import (
	"sort"
	"strings"

	"roster/internal/api"
	"roster/internal/dependency"
	"roster/pkg/logging"
)

// Orchestrator runs full-catalog and single-service validation passes.
type Orchestrator struct {
	structural StructuralValidator
}

// NewOrchestrator creates an Orchestrator with the given structural
// validator, or the built-in FieldValidator when nil.
func NewOrchestrator(structural StructuralValidator) *Orchestrator {
	if structural == nil {
		structural = FieldValidator{}
	}
	return &Orchestrator{structural: structural}
}

// RunCatalogValidation validates every record in the snapshot and returns
// the summary plus the status each service should transition to. One
// service's failure never aborts the pass.
//
// Pass structure: cycle detection first (a catalog-scope warning, not a
// per-service failure), then per-service dependency policy, then structural
// checks for the services that survived the policy stage.
func (o *Orchestrator) RunCatalogValidation(snapshot map[string]api.ServiceRecord) (*ValidationSummary, map[string]api.ServiceStatus) {
	summary := NewValidationSummary()
	statuses := make(map[string]api.ServiceStatus, len(snapshot))

	records := make([]api.ServiceRecord, 0, len(snapshot))
	for _, r := range snapshot {
		records = append(records, r)
	}
	graph := dependency.Build(records)

	if cycle := graph.DetectCycles(); cycle != nil {
		logging.Warn("Validation", "dependency cycle detected: %s", strings.Join(cycle.Path, " -> "))
		summary.AddWarning(SystemScope, cycle.Description)
	}

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		record := snapshot[name]
		warnings, hardErr := o.validateOne(record, snapshot)

		for _, w := range warnings {
			summary.AddWarning(name, w)
		}

		if hardErr != nil {
			summary.AddFailure(name, hardErr.Error())
			statuses[name] = api.NewServiceStatus(api.StateError).
				WithError(hardErr.Error()).
				WithWarnings(warnings)
			logging.Debug("Validation", "service %s failed validation: %v", name, hardErr)
			continue
		}

		summary.AddSuccess(name)
		statuses[name] = api.NewServiceStatus(api.StateActive).WithWarnings(warnings)
	}

	logging.Info("Validation", "catalog validation complete: %d passed, %d failed, run %s",
		summary.SuccessCount(), summary.FailureCount(), summary.RunID)
	return summary, statuses
}

// ValidateService validates a single record against the snapshot and
// returns the status it should transition to. Used at registration time.
func (o *Orchestrator) ValidateService(record api.ServiceRecord, snapshot map[string]api.ServiceRecord) api.ServiceStatus {
	warnings, hardErr := o.validateOne(record, snapshot)
	if hardErr != nil {
		return api.NewServiceStatus(api.StateError).
			WithError(hardErr.Error()).
			WithWarnings(warnings)
	}
	return api.NewServiceStatus(api.StateActive).WithWarnings(warnings)
}

// validateOne applies the dependency policy and, when it passes, the
// structural checks and type heuristics. Hard failures come back as
// DependencyPolicyError or StructuralError.
func (o *Orchestrator) validateOne(record api.ServiceRecord, snapshot map[string]api.ServiceRecord) ([]string, error) {
	depErrors, warnings := ValidateDependencies(record, snapshot)
	if len(depErrors) > 0 {
		// Structural checks are skipped this pass; the dependency failure
		// already drives the service to the error state.
		return warnings, api.NewDependencyPolicyError(record.Name, depErrors)
	}

	if problems := o.structural.Validate(record); len(problems) > 0 {
		return warnings, api.NewStructuralError(record.Name, problems)
	}
	warnings = append(warnings, TypeHeuristics(record)...)
	return warnings, nil
}
