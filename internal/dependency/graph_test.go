package dependency

import (
	"reflect"
	"testing"

	"roster/internal/api"
)

func record(name string, deps ...api.DependencySpec) api.ServiceRecord {
	return api.ServiceRecord{
		Name:         name,
		Version:      "1.0.0",
		Dependencies: deps,
	}
}

func required(target string) api.DependencySpec {
	return api.DependencySpec{Target: target, Required: true}
}

func optional(target string) api.DependencySpec {
	return api.DependencySpec{Target: target, Required: false}
}

func TestNew(t *testing.T) {
	g := New()
	if g == nil {
		t.Fatal("New() returned nil")
	}
	if g.NodeCount() != 0 {
		t.Fatalf("expected empty graph, got %d nodes", g.NodeCount())
	}
}

func TestAddNode(t *testing.T) {
	g := New()
	first := g.AddNode("auth")
	second := g.AddNode("billing")
	again := g.AddNode("auth")

	if first == second {
		t.Error("distinct names got the same index")
	}
	if again != first {
		t.Errorf("re-adding a node changed its index: got %d, want %d", again, first)
	}
	if g.NodeCount() != 2 {
		t.Errorf("expected 2 nodes, got %d", g.NodeCount())
	}
}

func TestAddEdgeCreatesEndpoints(t *testing.T) {
	g := New()
	g.AddEdge("api", "auth", EdgeMeta{Required: true})

	if !g.HasNode("api") || !g.HasNode("auth") {
		t.Fatal("AddEdge did not create the endpoint nodes")
	}
	if got := g.Neighbors("api"); !reflect.DeepEqual(got, []string{"auth"}) {
		t.Errorf("Neighbors(api) = %v, want [auth]", got)
	}
	if got := g.Neighbors("auth"); len(got) != 0 {
		t.Errorf("Neighbors(auth) = %v, want empty", got)
	}
}

func TestNeighborsUnknownNode(t *testing.T) {
	g := New()
	if got := g.Neighbors("missing"); got != nil {
		t.Errorf("Neighbors(missing) = %v, want nil", got)
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		records   []api.ServiceRecord
		wantNodes []string
		wantEdges map[string][]string
	}{
		{
			name:      "empty catalog",
			records:   nil,
			wantNodes: []string{},
			wantEdges: map[string][]string{},
		},
		{
			name: "linear chain",
			records: []api.ServiceRecord{
				record("gateway", required("orders")),
				record("orders", required("inventory")),
				record("inventory"),
			},
			wantNodes: []string{"gateway", "inventory", "orders"},
			wantEdges: map[string][]string{
				"gateway": {"orders"},
				"orders":  {"inventory"},
			},
		},
		{
			name: "dangling target is not an edge",
			records: []api.ServiceRecord{
				record("orders", required("inventory"), optional("ghost")),
				record("inventory"),
			},
			wantNodes: []string{"inventory", "orders"},
			wantEdges: map[string][]string{
				"orders": {"inventory"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.records)

			got := g.Nodes()
			if len(got) != len(tt.wantNodes) {
				t.Fatalf("Nodes() = %v, want %v", got, tt.wantNodes)
			}
			// Build adds nodes in sorted-name order.
			if !reflect.DeepEqual(got, tt.wantNodes) && len(tt.wantNodes) > 0 {
				t.Errorf("Nodes() = %v, want %v", got, tt.wantNodes)
			}

			for from, want := range tt.wantEdges {
				if neighbors := g.Neighbors(from); !reflect.DeepEqual(neighbors, want) {
					t.Errorf("Neighbors(%s) = %v, want %v", from, neighbors, want)
				}
			}
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	records := []api.ServiceRecord{
		record("zeta", required("alpha")),
		record("alpha"),
		record("mid", optional("zeta")),
	}
	shuffled := []api.ServiceRecord{records[2], records[0], records[1]}

	first := Build(records).Nodes()
	second := Build(shuffled).Nodes()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("node order depends on record order: %v vs %v", first, second)
	}
}

func TestBuildPreservesEdgeMeta(t *testing.T) {
	g := Build([]api.ServiceRecord{
		record("api", api.DependencySpec{Target: "auth", Required: true, VersionConstraint: "^2.0.0"}),
		record("auth"),
	})

	id := g.index["api"]
	if len(g.out[id]) != 1 {
		t.Fatalf("expected 1 edge from api, got %d", len(g.out[id]))
	}
	meta := g.out[id][0].meta
	if !meta.Required {
		t.Error("Required flag not preserved on edge")
	}
	if meta.VersionConstraint != "^2.0.0" {
		t.Errorf("VersionConstraint = %q, want ^2.0.0", meta.VersionConstraint)
	}
}
