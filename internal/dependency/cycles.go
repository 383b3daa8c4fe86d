package dependency

import (
	"fmt"
	"strings"
)

// CycleInfo describes one detected dependency cycle. Path lists the services
// on the cycle with the first element repeated at the end, e.g.
// ["a", "b", "c", "a"].
type CycleInfo struct {
	Path        []string
	Description string
}

// Node colors for the three-color depth-first search.
const (
	white = iota // unvisited
	gray         // on the current traversal path
	black        // fully explored
)

// frame is one entry on the explicit DFS stack: a node and a cursor into its
// outgoing edge list.
type frame struct {
	node   int
	cursor int
}

// DetectCycles returns the first dependency cycle found, or nil if the graph
// is acyclic. Every node is tried as a traversal root because a cycle may
// not be reachable from any single one. The result is deterministic for a
// fixed graph since nodes and edges are visited in index order.
//
// The search is iterative with its own frame stack; graph depth is bounded
// by memory, not by goroutine stack size.
func (g *Graph) DetectCycles() *CycleInfo {
	color := make([]int, len(g.names))

	for root := range g.names {
		if color[root] != white {
			continue
		}

		frames := []frame{{node: root}}
		path := []int{root}
		color[root] = gray

		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			if f.cursor < len(g.out[f.node]) {
				next := g.out[f.node][f.cursor].to
				f.cursor++

				switch color[next] {
				case white:
					color[next] = gray
					frames = append(frames, frame{node: next})
					path = append(path, next)
				case gray:
					// next is on the current path: the cycle is the path
					// suffix from its first occurrence back to it.
					return g.cycleFromPath(path, next)
				}
			} else {
				color[f.node] = black
				frames = frames[:len(frames)-1]
				path = path[:len(path)-1]
			}
		}
	}
	return nil
}

// cycleFromPath builds the CycleInfo for a back edge to the given node.
func (g *Graph) cycleFromPath(path []int, node int) *CycleInfo {
	start := 0
	for i, id := range path {
		if id == node {
			start = i
			break
		}
	}

	names := make([]string, 0, len(path)-start+1)
	for _, id := range path[start:] {
		names = append(names, g.names[id])
	}
	names = append(names, g.names[node])

	return &CycleInfo{
		Path:        names,
		Description: fmt.Sprintf("circular dependency: %s", strings.Join(names, " -> ")),
	}
}
