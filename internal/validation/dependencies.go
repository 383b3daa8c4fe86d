package validation

import (
	"fmt"

	"roster/internal/api"
)

// ValidateDependencies checks one service's declared dependencies against
// the catalog snapshot and returns the hard errors and warnings it found.
//
// Severity per dependency:
//   - target missing, required:   hard error
//   - target missing, optional:   warning
//   - no version constraint:      no version check
//   - Compatible:                 clean
//   - MinorIncompatible:          warning
//   - MajorIncompatible:          hard error when required, warning otherwise
func ValidateDependencies(record api.ServiceRecord, snapshot map[string]api.ServiceRecord) (hardErrors, warnings []string) {
	for _, dep := range record.Dependencies {
		target, exists := snapshot[dep.Target]
		if !exists {
			msg := fmt.Sprintf("dependency '%s' is not registered in the catalog", dep.Target)
			if dep.Required {
				hardErrors = append(hardErrors, fmt.Sprintf("required %s", msg))
			} else {
				warnings = append(warnings, fmt.Sprintf("optional %s", msg))
			}
			continue
		}

		if dep.VersionConstraint == "" {
			continue
		}

		switch Classify(target.Version, dep.VersionConstraint) {
		case Compatible:
		case MinorIncompatible:
			warnings = append(warnings, fmt.Sprintf(
				"dependency '%s' version %s differs in minor version from constraint %s",
				dep.Target, target.Version, dep.VersionConstraint))
		case MajorIncompatible:
			msg := fmt.Sprintf(
				"dependency '%s' version %s is major-incompatible with constraint %s",
				dep.Target, target.Version, dep.VersionConstraint)
			if dep.Required {
				hardErrors = append(hardErrors, msg)
			} else {
				warnings = append(warnings, msg)
			}
		}
	}
	return hardErrors, warnings
}
