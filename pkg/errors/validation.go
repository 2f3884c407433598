package errors

import (
	"unicode"
)

// maxPackageName bounds names passed to external tools.
const maxPackageName = 256

// ValidatePackageName rejects names that are unsafe to hand to the search
// tool as a pattern: empty names, overly long names and names containing
// control characters. Cargo has already validated real crate names; this
// guards against malformed metadata.
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > maxPackageName {
		return New(ErrCodeInvalidPackage, "package name too long (max %d characters)", maxPackageName)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid control characters")
		}
	}

	return nil
}
