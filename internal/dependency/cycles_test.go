package dependency

import (
	"reflect"
	"strconv"
	"strings"
	"testing"
)

func TestDetectCyclesAcyclic(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Graph
	}{
		{
			name:  "empty graph",
			build: New,
		},
		{
			name: "single node",
			build: func() *Graph {
				g := New()
				g.AddNode("lonely")
				return g
			},
		},
		{
			name: "linear chain",
			build: func() *Graph {
				g := New()
				g.AddEdge("a", "b", EdgeMeta{Required: true})
				g.AddEdge("b", "c", EdgeMeta{Required: true})
				return g
			},
		},
		{
			name: "diamond",
			build: func() *Graph {
				g := New()
				g.AddEdge("top", "left", EdgeMeta{Required: true})
				g.AddEdge("top", "right", EdgeMeta{})
				g.AddEdge("left", "bottom", EdgeMeta{Required: true})
				g.AddEdge("right", "bottom", EdgeMeta{Required: true})
				return g
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if cycle := tt.build().DetectCycles(); cycle != nil {
				t.Errorf("expected no cycle, got %v", cycle.Path)
			}
		})
	}
}

func TestDetectCyclesSelfLoop(t *testing.T) {
	g := New()
	g.AddEdge("selfish", "selfish", EdgeMeta{Required: true})

	cycle := g.DetectCycles()
	if cycle == nil {
		t.Fatal("self loop not detected")
	}
	if want := []string{"selfish", "selfish"}; !reflect.DeepEqual(cycle.Path, want) {
		t.Errorf("Path = %v, want %v", cycle.Path, want)
	}
}

func TestDetectCyclesThreeNodes(t *testing.T) {
	g := New()
	g.AddEdge("x", "y", EdgeMeta{Required: true})
	g.AddEdge("y", "z", EdgeMeta{Required: true})
	g.AddEdge("z", "x", EdgeMeta{Required: true})

	cycle := g.DetectCycles()
	if cycle == nil {
		t.Fatal("cycle not detected")
	}
	if len(cycle.Path) != 4 {
		t.Fatalf("Path = %v, want 4 entries with first repeated last", cycle.Path)
	}
	if cycle.Path[0] != cycle.Path[len(cycle.Path)-1] {
		t.Errorf("Path = %v, first and last entries differ", cycle.Path)
	}
	if !strings.HasPrefix(cycle.Description, "circular dependency: ") {
		t.Errorf("Description = %q", cycle.Description)
	}
}

func TestDetectCyclesUnreachableFromFirstRoot(t *testing.T) {
	// The cycle lives in a component no edge from "entry" reaches; every
	// node must be tried as a root.
	g := New()
	g.AddEdge("entry", "leaf", EdgeMeta{Required: true})
	g.AddEdge("p", "q", EdgeMeta{Required: true})
	g.AddEdge("q", "p", EdgeMeta{Required: true})

	if cycle := g.DetectCycles(); cycle == nil {
		t.Fatal("cycle in disconnected component not detected")
	}
}

func TestDetectCyclesIgnoresCrossEdges(t *testing.T) {
	// A node reachable along two branches is not a cycle.
	g := New()
	g.AddEdge("root", "a", EdgeMeta{Required: true})
	g.AddEdge("root", "b", EdgeMeta{Required: true})
	g.AddEdge("a", "shared", EdgeMeta{Required: true})
	g.AddEdge("b", "shared", EdgeMeta{Required: true})

	if cycle := g.DetectCycles(); cycle != nil {
		t.Errorf("diamond reported as cycle: %v", cycle.Path)
	}
}

func TestDetectCyclesDeepChain(t *testing.T) {
	// A long chain closed back on itself; exercises the explicit stack.
	g := New()
	const depth = 2000
	names := make([]string, depth)
	for i := range names {
		names[i] = "svc-" + strconv.Itoa(i)
	}
	for i := 0; i < depth-1; i++ {
		g.AddEdge(names[i], names[i+1], EdgeMeta{Required: true})
	}
	g.AddEdge(names[depth-1], names[0], EdgeMeta{Required: true})

	cycle := g.DetectCycles()
	if cycle == nil {
		t.Fatal("deep cycle not detected")
	}
	if len(cycle.Path) != depth+1 {
		t.Errorf("Path length = %d, want %d", len(cycle.Path), depth+1)
	}
}
