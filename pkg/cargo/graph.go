package cargo

// Graph is a resolved build graph: the root package reference plus every
// package reachable from it, root included.
type Graph struct {
	Root     string    // Name of the root package
	Packages []Package // All resolved packages, in provider order
}

// Package is a node in the build graph.
type Package struct {
	ID           string       // Provider-specific package id
	Name         string       // Unique within one resolved graph
	Version      string       // Resolved version
	Edition      string       // Rust edition (e.g. "2021")
	ManifestPath string       // Absolute path of the package's Cargo.toml
	Targets      []Target     // Build targets, in declaration order
	Dependencies []Dependency // Declared dependencies, in declaration order
}

// Target is a build target of a package.
type Target struct {
	Name       string   // Target name
	Kind       []string // e.g. ["lib"], ["bin"], ["proc-macro"]
	CrateTypes []string // e.g. ["lib"], ["cdylib", "rlib"]
}

// Dependency is a declared edge from a package to another package by name.
// Only Name takes part in duplicate detection; the remaining fields are
// carried for diagnostics.
type Dependency struct {
	Name     string   // Name of the depended-on package
	Req      string   // Version requirement (e.g. "^1.0")
	Kind     string   // "", "dev" or "build"
	Rename   string   // Local name from `foo = { package = "bar" }`, if any
	Optional bool     // Declared optional (feature-gated)
	Features []string // Enabled features
}

// RootPackage returns the package whose name equals g.Root.
func (g *Graph) RootPackage() (*Package, bool) {
	if g == nil || g.Root == "" {
		return nil, false
	}
	for i := range g.Packages {
		if g.Packages[i].Name == g.Root {
			return &g.Packages[i], true
		}
	}
	return nil, false
}
