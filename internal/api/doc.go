// Package api defines the shared types and error taxonomy used across the
// roster packages.
//
// Following the central-types pattern, every package that needs a service
// record, a dependency spec or a status value imports it from here instead of
// duplicating it. This keeps the registry, the dependency graph engine and
// the validation orchestrator decoupled from one another: they only share
// this package.
//
// # Error Taxonomy
//
// Domain errors are typed structs with constructor helpers and errors.As
// based predicates:
//
//   - NotFoundError — a requested service (or other resource) does not exist
//   - CycleError — an ordering operation was requested over a cyclic subgraph
//   - DependencyPolicyError — a required dependency is missing or
//     major-incompatible
//   - StructuralError — a service definition failed structural validation
//   - InternalInvariantError — a defensive guard tripped; indicates a bug,
//     not a user error
//
// Infrastructure failures (file I/O, parsing) never use these types; they
// stay in the packages that produce them and are composed with %w wrapping
// at the orchestration boundary only.
package api
