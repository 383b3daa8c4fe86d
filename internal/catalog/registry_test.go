package catalog

import (
	"reflect"
	"testing"

	"roster/internal/api"
)

func record(name, version string, deps ...api.DependencySpec) api.ServiceRecord {
	return api.ServiceRecord{Name: name, Version: version, Dependencies: deps}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(record("auth", "1.0.0")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, err := r.Get("auth")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Version != "1.0.0" {
		t.Errorf("Version = %s, want 1.0.0", got.Version)
	}
	if got.Status.State != api.StateValidating {
		t.Errorf("fresh registration state = %s, want %s", got.Status.State, api.StateValidating)
	}
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(record("auth", "1.0.0")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register(record("auth", "2.0.0")); err == nil {
		t.Fatal("expected error on duplicate registration")
	}

	got, _ := r.Get("auth")
	if got.Version != "1.0.0" {
		t.Errorf("duplicate registration overwrote the record: version %s", got.Version)
	}
}

func TestRegistryUpdate(t *testing.T) {
	r := NewRegistry()

	if err := r.Update(record("auth", "1.0.0")); !api.IsNotFound(err) {
		t.Errorf("Update of unknown service: got %v, want NotFoundError", err)
	}

	_ = r.Register(record("auth", "1.0.0"))
	if err := r.Update(record("auth", "2.0.0")); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := r.Get("auth")
	if got.Version != "2.0.0" {
		t.Errorf("Version = %s, want 2.0.0", got.Version)
	}
	if got.Status.State != api.StateValidating {
		t.Errorf("updated state = %s, want %s", got.Status.State, api.StateValidating)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("ghost"); !api.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestRegistryListSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_ = r.Register(record(name, "1.0.0"))
	}

	var names []string
	for _, rec := range r.List() {
		names = append(names, rec.Name)
	}
	if want := []string{"alpha", "mid", "zeta"}; !reflect.DeepEqual(names, want) {
		t.Errorf("List order = %v, want %v", names, want)
	}
	if !reflect.DeepEqual(r.Names(), []string{"alpha", "mid", "zeta"}) {
		t.Errorf("Names = %v", r.Names())
	}
}

func TestRegistrySnapshotIsolation(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(record("auth", "1.0.0",
		api.DependencySpec{Target: "db", Required: true}))

	snapshot := r.Snapshot()

	// Mutating the snapshot must not leak back into the registry.
	rec := snapshot["auth"]
	rec.Dependencies[0].Target = "tampered"

	got, _ := r.Get("auth")
	if got.Dependencies[0].Target != "db" {
		t.Error("snapshot mutation leaked into the registry")
	}
}

func TestRegistrySetStatus(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(record("auth", "1.0.0"))

	r.SetStatus("auth", api.NewServiceStatus(api.StateActive))
	got, _ := r.Get("auth")
	if got.Status.State != api.StateActive {
		t.Errorf("state = %s, want %s", got.Status.State, api.StateActive)
	}

	// Unknown name is a no-op, not a panic.
	r.SetStatus("ghost", api.NewServiceStatus(api.StateActive))
}

func TestRegistryCount(t *testing.T) {
	r := NewRegistry()
	if r.Count() != 0 {
		t.Errorf("Count = %d, want 0", r.Count())
	}
	_ = r.Register(record("a", "1.0.0"))
	_ = r.Register(record("b", "1.0.0"))
	if r.Count() != 2 {
		t.Errorf("Count = %d, want 2", r.Count())
	}
}
