package cargo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cargo-dupdeps/pkg/errors"
)

// ManifestName is the file cargo looks for when no override is given.
const ManifestName = "Cargo.toml"

// Manifest is the subset of Cargo.toml read during preflight.
type Manifest struct {
	Path      string
	Package   *ManifestPackage
	Workspace bool // A [workspace] table is present

	Dependencies      map[string]any
	DevDependencies   map[string]any
	BuildDependencies map[string]any
}

// ManifestPackage is the [package] table.
type ManifestPackage struct {
	Name    string
	Version string
	Edition string
}

// Virtual reports whether the manifest is a workspace root without a
// package of its own. Such a manifest has no root package to analyze.
func (m *Manifest) Virtual() bool {
	return m.Package == nil && m.Workspace
}

// DeclaredDependencies returns the number of entries across all three
// dependency tables.
func (m *Manifest) DeclaredDependencies() int {
	return len(m.Dependencies) + len(m.DevDependencies) + len(m.BuildDependencies)
}

type cargoFile struct {
	Package *struct {
		Name    string `toml:"name"`
		Version any    `toml:"version"`
		Edition any    `toml:"edition"`
	} `toml:"package"`
	Workspace         map[string]any `toml:"workspace"`
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}

// ReadManifest parses the Cargo.toml at path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}

	var cargo cargoFile
	md, err := toml.Decode(string(data), &cargo)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}

	m := &Manifest{
		Path:              path,
		Workspace:         md.IsDefined("workspace"),
		Dependencies:      cargo.Dependencies,
		DevDependencies:   cargo.DevDependencies,
		BuildDependencies: cargo.BuildDependencies,
	}
	if cargo.Package != nil {
		m.Package = &ManifestPackage{
			Name: cargo.Package.Name,
			// version and edition may be `{ workspace = true }` tables.
			Version: scalar(cargo.Package.Version),
			Edition: scalar(cargo.Package.Edition),
		}
	}
	return m, nil
}

func scalar(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// FindManifest walks up from dir to the first directory containing
// Cargo.toml, mirroring cargo's own discovery.
func FindManifest(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "resolve %s", dir)
	}
	for d := abs; ; {
		p := filepath.Join(d, ManifestName)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", errors.New(errors.ErrCodeFileNotFound, "could not find %s in %s or any parent directory", ManifestName, abs)
		}
		d = parent
	}
}

// Preflight locates and parses the manifest cfg refers to and rejects
// manifests without a [package] table. It does not change what the provider resolves.
func Preflight(cfg Config) (*Manifest, error) {
	path := cfg.ManifestPath
	if path == "" {
		dir := cfg.Dir
		if dir == "" {
			dir = "."
		}
		found, err := FindManifest(dir)
		if err != nil {
			return nil, err
		}
		path = found
	} else if !strings.EqualFold(filepath.Base(path), ManifestName) {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest path must point to %s: %s", ManifestName, path)
	} else if cfg.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Dir, path)
	}

	m, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if m.Virtual() {
		return nil, errors.New(errors.ErrCodeRootNotFound, "%s is a virtual manifest; point --manifest-path at a member package", path)
	}
	if m.Package == nil {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "%s has no [package] table", path)
	}
	return m, nil
}
