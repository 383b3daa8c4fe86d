// Package catalog implements the service registry and the operations that
// run on top of it: registration, snapshot extraction, full-catalog
// validation, lifecycle ordering, impact analysis and deletion safety.
//
// The registry is a name-keyed map behind a single RWMutex. Every analysis
// (validation, ordering, impact) runs on a snapshot copied out under the
// read lock, so long traversals never hold the registry lock and no method
// re-enters it.
//
// The dependency graph is derived state: it is rebuilt from a snapshot for
// each analysis rather than maintained incrementally, keeping the registry
// and graph trivially consistent.
package catalog
