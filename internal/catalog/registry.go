package catalog

import (
	"fmt"
	"sort"
	"sync"

	"roster/internal/api"
	"roster/pkg/logging"
)

// Registry is the in-memory service store. All access goes through its
// methods; the zero value is not usable, use NewRegistry.
type Registry struct {
	mu       sync.RWMutex
	services map[string]api.ServiceRecord
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]api.ServiceRecord),
	}
}

// Register adds a new service. The record's status is reset to Validating;
// validation decides the final state. Registering a name that already
// exists is an error, use Update for re-registration.
func (r *Registry) Register(record api.ServiceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.services[record.Name]; exists {
		return fmt.Errorf("service %s is already registered", record.Name)
	}

	record.Status = api.NewServiceStatus(api.StateValidating)
	r.services[record.Name] = record
	logging.Debug("Registry", "registered service %s version %s", record.Name, record.Version)
	return nil
}

// Update replaces an existing service's record, resetting its status to
// Validating. The service must already be registered.
func (r *Registry) Update(record api.ServiceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.services[record.Name]; !exists {
		return api.NewServiceNotFoundError(record.Name)
	}

	record.Status = api.NewServiceStatus(api.StateValidating)
	r.services[record.Name] = record
	logging.Debug("Registry", "updated service %s to version %s", record.Name, record.Version)
	return nil
}

// Get returns a copy of the named service's record.
func (r *Registry) Get(name string) (api.ServiceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.services[name]
	if !exists {
		return api.ServiceRecord{}, api.NewServiceNotFoundError(name)
	}
	return record.Clone(), nil
}

// List returns copies of all records sorted by name.
func (r *Registry) List() []api.ServiceRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]api.ServiceRecord, 0, len(r.services))
	for _, record := range r.services {
		records = append(records, record.Clone())
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records
}

// Names returns all registered service names sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered services.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.services)
}

// Snapshot copies out the full name-to-record map for analyses. The copy is
// deep enough that registry mutations after the call cannot be observed
// through it.
func (r *Registry) Snapshot() map[string]api.ServiceRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]api.ServiceRecord, len(r.services))
	for name, record := range r.services {
		snapshot[name] = record.Clone()
	}
	return snapshot
}

// SetStatus replaces the named service's status. Unknown names are ignored:
// a service deleted mid-validation simply has no status to update.
func (r *Registry) SetStatus(name string, status api.ServiceStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.services[name]
	if !exists {
		return
	}
	record.Status = status
	r.services[name] = record
}

// remove deletes the named service. Callers decide on safety first.
func (r *Registry) remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.services[name]; !exists {
		return api.NewServiceNotFoundError(name)
	}
	delete(r.services, name)
	logging.Debug("Registry", "removed service %s", name)
	return nil
}
