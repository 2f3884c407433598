package usage

import "strings"

// Normalize returns the identifier Rust source uses for a package name:
// every hyphen becomes an underscore. Names without hyphens are returned
// unchanged. Normalize is idempotent.
func Normalize(name string) string {
	if !strings.Contains(name, "-") {
		return name
	}
	return strings.ReplaceAll(name, "-", "_")
}

// Probes returns the fixed-string patterns searched for name, in the order
// they run: the `use` form first, then the path form.
func Probes(name string) []string {
	id := Normalize(name)
	return []string{"use " + id, id + "::"}
}
