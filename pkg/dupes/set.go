package dupes

import (
	"maps"
	"slices"
)

// Set is an unordered set of package names.
type Set map[string]struct{}

// NewSet returns a set holding names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name; adding an existing name is a no-op.
func (s Set) Add(name string) { s[name] = struct{}{} }

// Has reports whether name is in s.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in s.
func (s Set) Len() int { return len(s) }

// Intersect returns a new set of names present in both s and other.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set)
	for n := range small {
		if large.Has(n) {
			out.Add(n)
		}
	}
	return out
}

// Sorted returns the names in s in ascending order. Sets have no inherent
// order; use this for anything printed or compared.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
