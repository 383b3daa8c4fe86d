package dependency

import (
	"sort"

	"roster/internal/api"
)

// EdgeMeta is the metadata attached to a dependency edge.
type EdgeMeta struct {
	// Required mirrors the DependencySpec flag: a required edge makes the
	// dependent critically coupled to the dependency.
	Required bool

	// VersionConstraint is the declared constraint, empty when none was given.
	VersionConstraint string
}

// edge is an outgoing adjacency entry, indexed form.
type edge struct {
	to   int
	meta EdgeMeta
}

// Graph is a directed dependency graph over service names. It is not
// thread-safe; it is built from an immutable snapshot and used by a single
// goroutine per analysis.
type Graph struct {
	names []string       // index -> name
	index map[string]int // name -> index
	out   [][]edge       // outgoing edges by node index
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// AddNode adds a node for the name if not present and returns its index.
func (g *Graph) AddNode(name string) int {
	if id, ok := g.index[name]; ok {
		return id
	}
	id := len(g.names)
	g.names = append(g.names, name)
	g.index[name] = id
	g.out = append(g.out, nil)
	return id
}

// AddEdge adds a dependency edge from -> to, creating both endpoints as
// nodes if needed.
func (g *Graph) AddEdge(from, to string, meta EdgeMeta) {
	f := g.AddNode(from)
	t := g.AddNode(to)
	g.out[f] = append(g.out[f], edge{to: t, meta: meta})
}

// HasNode reports whether the name is a node in the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.names)
}

// Nodes returns all node names in index order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, len(g.names))
	copy(nodes, g.names)
	return nodes
}

// Neighbors returns the direct dependencies of the named service, in edge
// insertion order. Returns nil for unknown names.
func (g *Graph) Neighbors(name string) []string {
	id, ok := g.index[name]
	if !ok {
		return nil
	}
	neighbors := make([]string, 0, len(g.out[id]))
	for _, e := range g.out[id] {
		neighbors = append(neighbors, g.names[e.to])
	}
	return neighbors
}

// Build constructs a graph from the given service records. Every record
// becomes a node; a declared dependency becomes an edge only when its target
// is itself among the records. Nodes are added in sorted-name order so that
// analyses over the same record set are deterministic.
func Build(records []api.ServiceRecord) *Graph {
	g := New()

	byName := make(map[string]api.ServiceRecord, len(records))
	names := make([]string, 0, len(records))
	for _, r := range records {
		if _, dup := byName[r.Name]; !dup {
			names = append(names, r.Name)
		}
		byName[r.Name] = r
	}
	sort.Strings(names)

	for _, name := range names {
		g.AddNode(name)
	}
	for _, name := range names {
		for _, dep := range byName[name].Dependencies {
			if _, present := byName[dep.Target]; !present {
				// Dangling dependency: surfaced by the validator, not an edge.
				continue
			}
			g.AddEdge(name, dep.Target, EdgeMeta{
				Required:          dep.Required,
				VersionConstraint: dep.VersionConstraint,
			})
		}
	}
	return g
}

// induced returns the subgraph induced by the given node ids, preserving
// relative index order. Used by ResolveOrder to re-run cycle detection on
// just the reachable portion.
func (g *Graph) induced(ids []int) *Graph {
	sub := New()
	keep := make(map[int]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	ordered := make([]int, len(ids))
	copy(ordered, ids)
	sort.Ints(ordered)
	for _, id := range ordered {
		sub.AddNode(g.names[id])
	}
	for _, id := range ordered {
		for _, e := range g.out[id] {
			if keep[e.to] {
				sub.AddEdge(g.names[id], g.names[e.to], e.meta)
			}
		}
	}
	return sub
}

// reverse returns the reverse adjacency: for each node, the list of nodes
// that have an edge pointing at it, with the edge metadata preserved.
func (g *Graph) reverse() [][]edge {
	in := make([][]edge, len(g.names))
	for from, edges := range g.out {
		for _, e := range edges {
			in[e.to] = append(in[e.to], edge{to: from, meta: e.meta})
		}
	}
	return in
}
