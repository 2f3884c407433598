package dupes

import (
	"github.com/matzehuels/cargo-dupdeps/pkg/cargo"
	"github.com/matzehuels/cargo-dupdeps/pkg/errors"
)

// Result holds the sets derived from one build graph.
type Result struct {
	Root       *cargo.Package // The root package
	RootDeps   Set            // Names declared directly by the root
	OtherDeps  Set            // Names declared by every non-root package
	Duplicates Set            // RootDeps ∩ OtherDeps
}

// Detect computes the duplicate-candidate set for g. It fails with
// ErrCodeRootNotFound when no package matches g.Root.
func Detect(g *cargo.Graph) (*Result, error) {
	root, ok := g.RootPackage()
	if !ok {
		var name string
		if g != nil {
			name = g.Root
		}
		return nil, errors.New(errors.ErrCodeRootNotFound, "root package %q not found in build graph", name)
	}

	rootDeps := make(Set, len(root.Dependencies))
	for _, d := range root.Dependencies {
		rootDeps.Add(d.Name)
	}

	otherDeps := make(Set)
	for _, p := range g.Packages {
		if p.Name == root.Name {
			continue
		}
		for _, d := range p.Dependencies {
			otherDeps.Add(d.Name)
		}
	}

	return &Result{
		Root:       root,
		RootDeps:   rootDeps,
		OtherDeps:  otherDeps,
		Duplicates: rootDeps.Intersect(otherDeps),
	}, nil
}
