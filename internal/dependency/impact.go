package dependency

import (
	"fmt"

	"roster/internal/api"
)

// ImpactInfo describes one service affected by a change to a target service.
type ImpactInfo struct {
	// Service is the name of the affected dependent.
	Service string `json:"service"`
	// IsRequired reports whether the edge through which this dependent was
	// discovered declares the dependency as required.
	IsRequired bool `json:"isRequired"`
	// Path is the dependency chain from the affected service down to the
	// target, target last.
	Path []string `json:"path"`
	// Description is a human-readable summary of the chain.
	Description string `json:"description"`
}

// Impact returns the names of all services that directly or transitively
// depend on target. The target itself is not included.
func (g *Graph) Impact(target string) ([]string, error) {
	infos, err := g.DetailedImpact(target)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Service)
	}
	return names, nil
}

// DetailedImpact returns one ImpactInfo per service that directly or
// transitively depends on target, in breadth-first discovery order. Each
// dependent is reported once, through the first path that reaches it.
func (g *Graph) DetailedImpact(target string) ([]ImpactInfo, error) {
	return g.impact(target, false)
}

// CriticalImpact returns the subset of the impact set reachable from target
// through required edges only. A dependent connected only through a chain
// that crosses an optional edge is not critical.
func (g *Graph) CriticalImpact(target string) ([]ImpactInfo, error) {
	return g.impact(target, true)
}

type impactNode struct {
	id int
	// localRequired is the Required flag of the edge that discovered id.
	localRequired bool
	// chainRequired is true when every edge on the path back to the target
	// is required.
	chainRequired bool
	path          []int
}

func (g *Graph) impact(target string, criticalOnly bool) ([]ImpactInfo, error) {
	targetID, ok := g.index[target]
	if !ok {
		return nil, api.NewServiceNotFoundError(target)
	}

	rev := g.reverse()
	visited := make([]bool, len(g.names))
	visited[targetID] = true

	var infos []ImpactInfo
	queue := []impactNode{{id: targetID, chainRequired: true, path: []int{targetID}}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range rev[cur.id] {
			// In critical mode the traversal itself is restricted to
			// required edges, so reachability means "connected through a
			// fully required chain".
			if criticalOnly && !e.meta.Required {
				continue
			}
			if visited[e.to] {
				continue
			}
			visited[e.to] = true
			next := impactNode{
				id:            e.to,
				localRequired: e.meta.Required,
				chainRequired: cur.chainRequired && e.meta.Required,
				path:          append(append([]int{}, cur.path...), e.to),
			}
			queue = append(queue, next)
			infos = append(infos, g.impactInfo(next, target))
		}
	}
	return infos, nil
}

func (g *Graph) impactInfo(n impactNode, target string) ImpactInfo {
	// The BFS path runs target-outward; the reported chain runs from the
	// affected service down to the target.
	path := make([]string, len(n.path))
	for i, id := range n.path {
		path[len(n.path)-1-i] = g.names[id]
	}

	kind := "Optional"
	if n.chainRequired {
		kind = "Required"
	}
	return ImpactInfo{
		Service:    g.names[n.id],
		IsRequired: n.localRequired,
		Path:       path,
		Description: fmt.Sprintf("%s dependency chain from '%s' to '%s'",
			kind, g.names[n.id], target),
	}
}
