package config

import (
	"fmt"
	"strings"

	"roster/internal/api"
)

// ValidationError represents a definition field error with context.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of definition field errors.
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors.
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add appends a new validation error.
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// ValidateDefinition checks the fields a definition file must declare.
// Catalog-level checks (dependency targets, version compatibility) belong
// to the validation package; this only guards the file format.
func ValidateDefinition(record api.ServiceRecord) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(record.Name) == "" {
		errs.Add("name", "is required", record.Name)
	}
	if strings.TrimSpace(record.Version) == "" {
		errs.Add("version", "is required", record.Version)
	}
	for i, dep := range record.Dependencies {
		if strings.TrimSpace(dep.Target) == "" {
			errs.Add(fmt.Sprintf("dependencies[%d].service", i), "is required", dep.Target)
		}
	}
	for i, ep := range record.Endpoints {
		if strings.TrimSpace(ep.Name) == "" {
			errs.Add(fmt.Sprintf("endpoints[%d].name", i), "is required", ep.Name)
		}
	}
	return errs
}
