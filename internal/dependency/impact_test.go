package dependency

import (
	"reflect"
	"sort"
	"testing"

	"roster/internal/api"
)

// impactFixture builds the catalog used across the impact tests:
//
//	a --required--> b --required--> d
//	c --optional--> b
//	e --required--> c
func impactFixture() *Graph {
	return Build([]api.ServiceRecord{
		record("a", required("b")),
		record("b", required("d")),
		record("c", optional("b")),
		record("d"),
		record("e", required("c")),
	})
}

func serviceNames(infos []ImpactInfo) []string {
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Service)
	}
	sort.Strings(names)
	return names
}

func TestImpactUnknownTarget(t *testing.T) {
	g := impactFixture()
	if _, err := g.Impact("ghost"); !api.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestImpactLeaf(t *testing.T) {
	g := impactFixture()

	// Everything transitively depends on d.
	names, err := g.Impact("d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sort.Strings(names)
	want := []string{"a", "b", "c", "e"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Impact(d) = %v, want %v", names, want)
	}
}

func TestImpactNoDependents(t *testing.T) {
	g := impactFixture()

	names, err := g.Impact("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Impact(a) = %v, want empty", names)
	}
}

func TestDetailedImpactPaths(t *testing.T) {
	g := impactFixture()

	infos, err := g.DetailedImpact("b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byService := make(map[string]ImpactInfo, len(infos))
	for _, info := range infos {
		byService[info.Service] = info
	}

	a, ok := byService["a"]
	if !ok {
		t.Fatal("a missing from impact set")
	}
	if !a.IsRequired {
		t.Error("a -> b is a required edge, IsRequired should be true")
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(a.Path, want) {
		t.Errorf("Path for a = %v, want %v", a.Path, want)
	}
	if want := "Required dependency chain from 'a' to 'b'"; a.Description != want {
		t.Errorf("Description = %q, want %q", a.Description, want)
	}

	c, ok := byService["c"]
	if !ok {
		t.Fatal("c missing from impact set")
	}
	if c.IsRequired {
		t.Error("c -> b is an optional edge, IsRequired should be false")
	}
	if want := "Optional dependency chain from 'c' to 'b'"; c.Description != want {
		t.Errorf("Description = %q, want %q", c.Description, want)
	}

	e, ok := byService["e"]
	if !ok {
		t.Fatal("e missing from impact set")
	}
	// e's edge to c is required, but the chain crosses c's optional edge.
	if !e.IsRequired {
		t.Error("e -> c is a required edge, IsRequired should be true")
	}
	if want := []string{"e", "c", "b"}; !reflect.DeepEqual(e.Path, want) {
		t.Errorf("Path for e = %v, want %v", e.Path, want)
	}
	if want := "Optional dependency chain from 'e' to 'b'"; e.Description != want {
		t.Errorf("Description = %q, want %q", e.Description, want)
	}
}

func TestCriticalImpactExcludesOptionalChains(t *testing.T) {
	g := impactFixture()

	infos, err := g.CriticalImpact("b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"a"}; !reflect.DeepEqual(serviceNames(infos), want) {
		t.Errorf("CriticalImpact(b) = %v, want %v", serviceNames(infos), want)
	}
}

func TestCriticalImpactTransitive(t *testing.T) {
	g := impactFixture()

	infos, err := g.CriticalImpact("d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a -> b -> d is fully required; c and e reach d only through c's
	// optional edge onto b.
	if want := []string{"a", "b"}; !reflect.DeepEqual(serviceNames(infos), want) {
		t.Errorf("CriticalImpact(d) = %v, want %v", serviceNames(infos), want)
	}
}

func TestCriticalImpactAlternateRequiredPath(t *testing.T) {
	// f reaches target both via an optional hop and a fully required chain;
	// the required chain makes it critical.
	g := Build([]api.ServiceRecord{
		record("target"),
		record("mid", required("target")),
		record("f", optional("target"), required("mid")),
	})

	infos, err := g.CriticalImpact("target")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"f", "mid"}; !reflect.DeepEqual(serviceNames(infos), want) {
		t.Errorf("CriticalImpact(target) = %v, want %v", serviceNames(infos), want)
	}
}
