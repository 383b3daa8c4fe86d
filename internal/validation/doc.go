// Package validation implements the catalog's validation pipeline: semantic
// version compatibility classification, per-service dependency policy
// checks, structural checks of service definitions, and the catalog-wide
// orchestrator that combines them into a ValidationSummary.
//
// The pipeline is policy, not plumbing: it never mutates the registry
// directly. It consumes an immutable record snapshot and returns a summary
// plus the status each service should transition to; the catalog applies
// those transitions.
//
// Severity follows a fixed table. A missing required dependency or a
// major-incompatible required constraint is a hard error and drives the
// service to the error state. A missing optional dependency, a
// minor-incompatible constraint, or a major-incompatible optional
// constraint only produces warnings. Dependency cycles are reported once
// per run as a catalog-scope warning keyed "system" rather than failing
// every participating service; ordering operations over a cyclic subgraph
// still fail hard at the point of use.
package validation
