package catalog

import (
	"fmt"
	"sort"
	"strings"

	"roster/internal/api"
	"roster/internal/dependency"
	"roster/internal/validation"
	"roster/pkg/logging"
)

// DefinitionStore is the persistence surface the manager loads definitions
// from. Satisfied by config.Storage.
type DefinitionStore interface {
	List() ([]string, error)
	Load(name string) (api.ServiceRecord, error)
}

// Manager combines the registry with the validation pipeline and the
// graph-based analyses. It is the type the CLI talks to.
type Manager struct {
	registry  *Registry
	validator *validation.Orchestrator
}

// NewManager creates a Manager around a fresh registry and the default
// validation pipeline.
func NewManager() *Manager {
	return &Manager{
		registry:  NewRegistry(),
		validator: validation.NewOrchestrator(nil),
	}
}

// Registry exposes the underlying registry for read access.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Register adds the service and immediately validates it against the
// current catalog, setting its status to Active or Error. The registration
// itself succeeds even when validation drives the service to Error; the
// record stays in the catalog so the failure is inspectable.
func (m *Manager) Register(record api.ServiceRecord) (api.ServiceStatus, error) {
	if err := m.registry.Register(record); err != nil {
		return api.ServiceStatus{}, err
	}

	status := m.validator.ValidateService(record, m.registry.Snapshot())
	m.registry.SetStatus(record.Name, status)
	return status, nil
}

// Update replaces the service's record and re-validates it.
func (m *Manager) Update(record api.ServiceRecord) (api.ServiceStatus, error) {
	if err := m.registry.Update(record); err != nil {
		return api.ServiceStatus{}, err
	}

	status := m.validator.ValidateService(record, m.registry.Snapshot())
	m.registry.SetStatus(record.Name, status)
	return status, nil
}

// ValidateCatalog runs a full validation pass over every registered
// service, applies the resulting statuses and returns the summary.
func (m *Manager) ValidateCatalog() *validation.ValidationSummary {
	summary, statuses := m.validator.RunCatalogValidation(m.registry.Snapshot())
	for name, status := range statuses {
		m.registry.SetStatus(name, status)
	}
	return summary
}

// StartOrder returns the order in which the given services and their
// transitive dependencies should be started: dependencies first. Nil roots
// mean every registered service.
func (m *Manager) StartOrder(roots []string) ([]string, error) {
	snapshot := m.registry.Snapshot()
	if roots == nil {
		roots = sortedNames(snapshot)
	}
	return buildGraph(snapshot).ResolveOrder(roots)
}

// StopOrder returns the reverse of StartOrder: dependents first, so nothing
// is stopped while something still depends on it.
func (m *Manager) StopOrder(roots []string) ([]string, error) {
	order, err := m.StartOrder(roots)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

// Impact returns every service that would be affected by a change to the
// named service, with paths and descriptions.
func (m *Manager) Impact(name string) ([]dependency.ImpactInfo, error) {
	return buildGraph(m.registry.Snapshot()).DetailedImpact(name)
}

// CriticalImpact returns the services connected to the named service
// through required dependencies only.
func (m *Manager) CriticalImpact(name string) ([]dependency.ImpactInfo, error) {
	return buildGraph(m.registry.Snapshot()).CriticalImpact(name)
}

// Delete removes the named service. Without force, deletion is refused when
// any service critically depends on it; the error names the blockers. The
// returned list is the full impact set at the time of deletion, so callers
// can see what the removal touched.
func (m *Manager) Delete(name string, force bool) ([]dependency.ImpactInfo, error) {
	graph := buildGraph(m.registry.Snapshot())

	critical, err := graph.CriticalImpact(name)
	if err != nil {
		return nil, err
	}
	if len(critical) > 0 && !force {
		blockers := make([]string, 0, len(critical))
		for _, info := range critical {
			blockers = append(blockers, info.Service)
		}
		return nil, fmt.Errorf("cannot delete %s: required by %s (use force to override)",
			name, strings.Join(blockers, ", "))
	}

	impact, err := graph.DetailedImpact(name)
	if err != nil {
		return nil, err
	}
	if err := m.registry.remove(name); err != nil {
		return nil, err
	}
	logging.Info("Catalog", "deleted service %s, %d dependents affected", name, len(impact))
	return impact, nil
}

// LoadFromStore registers every definition the store holds, then runs one
// full validation pass. Definitions that fail to load are skipped with a
// warning; a broken file must not block the rest of the catalog.
func (m *Manager) LoadFromStore(store DefinitionStore) (*validation.ValidationSummary, error) {
	names, err := store.List()
	if err != nil {
		return nil, fmt.Errorf("listing stored definitions: %w", err)
	}

	for _, name := range names {
		record, err := store.Load(name)
		if err != nil {
			logging.Warn("Catalog", "skipping definition %s: %v", name, err)
			continue
		}
		if err := m.registry.Register(record); err != nil {
			logging.Warn("Catalog", "skipping definition %s: %v", name, err)
		}
	}

	logging.Info("Catalog", "loaded %d services from store", m.registry.Count())
	return m.ValidateCatalog(), nil
}

func buildGraph(snapshot map[string]api.ServiceRecord) *dependency.Graph {
	records := make([]api.ServiceRecord, 0, len(snapshot))
	for _, record := range snapshot {
		records = append(records, record)
	}
	return dependency.Build(records)
}

func sortedNames(snapshot map[string]api.ServiceRecord) []string {
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	// Build interns in sorted order; keep roots deterministic the same way.
	sort.Strings(names)
	return names
}
