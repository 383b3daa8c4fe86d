package dependency

import (
	"roster/internal/api"
)

// ResolveOrder returns the services reachable from roots ordered so that
// every dependency precedes its dependents. The empty root set resolves to
// an empty order. A root that is not a node yields a NotFoundError; a cycle
// in the reachable subgraph yields a CycleError.
func (g *Graph) ResolveOrder(roots []string) ([]string, error) {
	if len(roots) == 0 {
		return []string{}, nil
	}

	reachable, err := g.closure(roots)
	if err != nil {
		return nil, err
	}

	order := g.kahn(reachable)
	if len(order) != len(reachable) {
		// A cycle is hiding in the subgraph. Re-detect it on the induced
		// subgraph so the error names the offending services.
		if cycle := g.induced(reachable).DetectCycles(); cycle != nil {
			return nil, api.NewCycleError(cycle.Path)
		}
		return nil, api.NewInternalInvariantError(
			"topological order has %d nodes, subgraph has %d and no cycle was found",
			len(order), len(reachable))
	}

	// Kahn's natural output is dependents-first because edges point from
	// dependent to dependency; reverse so dependencies come first.
	names := make([]string, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		names = append(names, g.names[order[i]])
	}
	return names, nil
}

// closure returns the ids of all nodes reachable from roots by following
// outgoing edges, roots included. Iterative DFS with a visited guard.
func (g *Graph) closure(roots []string) ([]int, error) {
	visited := make([]bool, len(g.names))
	var reachable []int
	var stack []int

	for _, root := range roots {
		id, ok := g.index[root]
		if !ok {
			return nil, api.NewServiceNotFoundError(root)
		}
		if visited[id] {
			continue
		}
		visited[id] = true
		stack = append(stack, id)
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			reachable = append(reachable, node)
			for _, e := range g.out[node] {
				if !visited[e.to] {
					visited[e.to] = true
					stack = append(stack, e.to)
				}
			}
		}
	}
	return reachable, nil
}

// kahn runs Kahn's in-degree algorithm over the subgraph induced by the
// given node ids and returns the order it produces (dependents first). If
// the subgraph is cyclic, the result is shorter than the input.
func (g *Graph) kahn(sub []int) []int {
	inSub := make(map[int]bool, len(sub))
	for _, id := range sub {
		inSub[id] = true
	}

	inDegree := make(map[int]int, len(sub))
	for _, id := range sub {
		inDegree[id] = 0
	}
	for _, id := range sub {
		for _, e := range g.out[id] {
			if inSub[e.to] {
				inDegree[e.to]++
			}
		}
	}

	// Seed with zero in-degree nodes. sub is in DFS discovery order; the
	// exact order among independent branches is unspecified but stable.
	var queue []int
	for _, id := range sub {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]int, 0, len(sub))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)
		for _, e := range g.out[node] {
			if !inSub[e.to] {
				continue
			}
			inDegree[e.to]--
			if inDegree[e.to] == 0 {
				queue = append(queue, e.to)
			}
		}
	}
	return order
}
