package cargo

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/cargo-dupdeps/pkg/errors"
)

// metadataFormat is the `cargo metadata --format-version` this decoder reads.
const metadataFormat = "1"

// metadataJSON mirrors the subset of `cargo metadata` output we consume.
type metadataJSON struct {
	Packages []packageJSON `json:"packages"`
	Resolve  *struct {
		Root *string `json:"root"`
	} `json:"resolve"`
}

type packageJSON struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Version      string           `json:"version"`
	Edition      string           `json:"edition"`
	ManifestPath string           `json:"manifest_path"`
	Targets      []targetJSON     `json:"targets"`
	Dependencies []dependencyJSON `json:"dependencies"`
}

type targetJSON struct {
	Name       string   `json:"name"`
	Kind       []string `json:"kind"`
	CrateTypes []string `json:"crate_types"`
}

type dependencyJSON struct {
	Name     string   `json:"name"`
	Req      string   `json:"req"`
	Kind     *string  `json:"kind"`
	Rename   *string  `json:"rename"`
	Optional bool     `json:"optional"`
	Features []string `json:"features"`
}

// DecodeMetadata reads `cargo metadata --format-version 1` JSON from r.
// The root package id in resolve.root is mapped to its package name; a
// response without a resolvable root is an ErrCodeRootNotFound error.
func DecodeMetadata(r io.Reader) (*Graph, error) {
	var m metadataJSON
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMetadata, err, "decode cargo metadata")
	}
	if m.Resolve == nil {
		return nil, errors.New(errors.ErrCodeRootNotFound, "cargo metadata has no resolve section")
	}
	if m.Resolve.Root == nil || *m.Resolve.Root == "" {
		return nil, errors.New(errors.ErrCodeRootNotFound, "no root package (virtual workspace manifest?)")
	}

	g := &Graph{Packages: make([]Package, 0, len(m.Packages))}
	for _, p := range m.Packages {
		pkg := Package{
			ID:           p.ID,
			Name:         p.Name,
			Version:      p.Version,
			Edition:      p.Edition,
			ManifestPath: p.ManifestPath,
			Targets:      make([]Target, 0, len(p.Targets)),
			Dependencies: make([]Dependency, 0, len(p.Dependencies)),
		}
		for _, t := range p.Targets {
			pkg.Targets = append(pkg.Targets, Target{Name: t.Name, Kind: t.Kind, CrateTypes: t.CrateTypes})
		}
		for _, d := range p.Dependencies {
			pkg.Dependencies = append(pkg.Dependencies, Dependency{
				Name:     d.Name,
				Req:      d.Req,
				Kind:     deref(d.Kind),
				Rename:   deref(d.Rename),
				Optional: d.Optional,
				Features: d.Features,
			})
		}
		if p.ID == *m.Resolve.Root {
			g.Root = p.Name
		}
		g.Packages = append(g.Packages, pkg)
	}

	if g.Root == "" {
		return nil, errors.New(errors.ErrCodeRootNotFound, "root package %s not among resolved packages", *m.Resolve.Root)
	}
	return g, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
