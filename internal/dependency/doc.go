// Package dependency provides the directed dependency graph for the service
// catalog: construction from service records, cycle detection, topological
// ordering and impact analysis.
//
// Edges point from a dependent to its dependency, carrying the declared
// required flag and version constraint as metadata. The graph is derived
// state: callers rebuild it from a registry snapshot for every analysis, so
// there is nothing to keep in sync and nothing to lock during traversal.
//
// # Representation
//
// Service names are interned to small integer indices when nodes are added;
// every traversal operates on indices and translates back to names only at
// the API boundary. Node indices are assigned in sorted-name order by Build,
// which makes every analysis deterministic for a fixed record set.
//
// # Operations
//
// Build: construct a graph from service records. A declared dependency only
// becomes an edge when its target is itself a registered service; dangling
// dependencies are the validator's business, not the graph's.
//
// DetectCycles: iterative three-color depth-first search over every node.
// The traversal keeps its own frame stack, so adversarially deep graphs
// cannot exhaust the call stack.
//
// ResolveOrder: transitive-closure extraction followed by Kahn's in-degree
// sort, returned dependencies-first. A cyclic subgraph yields a CycleError,
// never a partial order.
//
// Impact / DetailedImpact / CriticalImpact: reverse reachability ("who
// depends on this service"), breadth-first so that direct dependents are
// reported before transitive ones and recorded paths stay minimal.
// CriticalImpact uses transitive criticality: a service counts as critically
// impacted only when every edge on its path back to the target is required.
// A service reached through any optional hop can survive the target's loss,
// so it is reported in the full impact list but never blocks deletion.
package dependency
