package validation

import (
	"github.com/Masterminds/semver/v3"
)

// VersionCompatibility classifies how well a service's actual version
// satisfies a declared constraint.
type VersionCompatibility string

const (
	// Compatible means major and minor both match.
	Compatible VersionCompatibility = "compatible"

	// MinorIncompatible means the major versions match but the minors differ.
	MinorIncompatible VersionCompatibility = "minor-incompatible"

	// MajorIncompatible means the major versions differ, or one of the two
	// inputs could not be parsed as a semantic version.
	MajorIncompatible VersionCompatibility = "major-incompatible"
)

// Classify compares an actual version against a constraint version and
// returns the compatibility class. Both inputs are parsed leniently
// ("1.2", "v1.2.3" and "^1.2.3" style prefixes are accepted); anything
// unparsable classifies as MajorIncompatible so that a malformed
// declaration is surfaced instead of silently passing.
func Classify(actual, constraint string) VersionCompatibility {
	actualVer, err := semver.NewVersion(trimConstraintPrefix(actual))
	if err != nil {
		return MajorIncompatible
	}
	constraintVer, err := semver.NewVersion(trimConstraintPrefix(constraint))
	if err != nil {
		return MajorIncompatible
	}

	if actualVer.Major() != constraintVer.Major() {
		return MajorIncompatible
	}
	if actualVer.Minor() != constraintVer.Minor() {
		return MinorIncompatible
	}
	return Compatible
}

// trimConstraintPrefix strips range operators commonly written in front of
// a version ("^1.2.3", "~1.2", ">=2.0.0"). Compatibility is decided by
// major/minor comparison against the base version, not by range semantics.
func trimConstraintPrefix(s string) string {
	for len(s) > 0 {
		switch s[0] {
		case '^', '~', '=', '>', '<', ' ':
			s = s[1:]
		default:
			return s
		}
	}
	return s
}
