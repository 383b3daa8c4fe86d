package api

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents a resource not found error with contextual
// information. It is returned whenever a requested root or target service is
// absent from the registry.
type NotFoundError struct {
	// ResourceType categorizes the type of resource that was not found
	// (e.g., "service", "definition")
	ResourceType string

	// ResourceName is the specific identifier of the resource that was not found
	ResourceName string
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.ResourceType, e.ResourceName)
}

// IsNotFound checks if an error is a NotFoundError using error unwrapping.
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// NewServiceNotFoundError creates a service not found error.
func NewServiceNotFoundError(name string) *NotFoundError {
	return &NotFoundError{ResourceType: "service", ResourceName: name}
}

// NewDefinitionNotFoundError creates a stored definition not found error.
func NewDefinitionNotFoundError(name string) *NotFoundError {
	return &NotFoundError{ResourceType: "definition", ResourceName: name}
}

// CycleError is returned when an ordering or lifecycle operation is requested
// over a subgraph that contains a dependency cycle. Path lists the services
// on the cycle with the first element repeated at the end.
type CycleError struct {
	Path []string
}

// Error implements the error interface for CycleError.
func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Path, " -> "))
}

// IsCycle checks if an error is a CycleError using error unwrapping.
func IsCycle(err error) bool {
	var cycleErr *CycleError
	return errors.As(err, &cycleErr)
}

// NewCycleError creates a CycleError for the given cycle path.
func NewCycleError(path []string) *CycleError {
	return &CycleError{Path: path}
}

// DependencyPolicyError is the hard-error outcome of dependency validation:
// a required dependency is missing from the catalog or major-incompatible
// with its declared constraint.
type DependencyPolicyError struct {
	// Service is the dependent whose declaration failed.
	Service string

	// Reasons holds one message per failed dependency.
	Reasons []string
}

// Error implements the error interface for DependencyPolicyError.
func (e *DependencyPolicyError) Error() string {
	return fmt.Sprintf("dependency validation failed for service %s: %s",
		e.Service, strings.Join(e.Reasons, "; "))
}

// NewDependencyPolicyError creates a DependencyPolicyError for the service.
func NewDependencyPolicyError(service string, reasons []string) *DependencyPolicyError {
	return &DependencyPolicyError{Service: service, Reasons: reasons}
}

// StructuralError reports that a service definition failed structural
// validation of its configuration payload.
type StructuralError struct {
	Service  string
	Problems []string
}

// Error implements the error interface for StructuralError.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural validation failed for service %s: %s",
		e.Service, strings.Join(e.Problems, "; "))
}

// NewStructuralError creates a StructuralError for the service.
func NewStructuralError(service string, problems []string) *StructuralError {
	return &StructuralError{Service: service, Problems: problems}
}

// InternalInvariantError signals that a defensive guard tripped, e.g. a
// topological sort whose output length does not match its subgraph. It is
// unreachable when cycle detection runs first; treat it as a bug.
type InternalInvariantError struct {
	Message string
}

// Error implements the error interface for InternalInvariantError.
func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated: %s", e.Message)
}

// NewInternalInvariantError creates an InternalInvariantError.
func NewInternalInvariantError(format string, args ...interface{}) *InternalInvariantError {
	return &InternalInvariantError{Message: fmt.Sprintf(format, args...)}
}
