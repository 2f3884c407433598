package cargo

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/matzehuels/cargo-dupdeps/pkg/errors"
)

// Source provides the resolved build graph for a configuration.
type Source interface {
	Metadata(ctx context.Context, cfg Config) (*Graph, error)
}

// CommandSource runs `cargo metadata` as a subprocess.
type CommandSource struct{}

// Metadata runs `<cfg.Cargo> metadata --format-version 1` with the manifest
// override, if any, and decodes its standard output.
func (CommandSource) Metadata(ctx context.Context, cfg Config) (*Graph, error) {
	cfg = cfg.WithDefaults()

	args := []string{"metadata", "--format-version", metadataFormat}
	if cfg.ManifestPath != "" {
		args = append(args, manifestPathFlag, cfg.ManifestPath)
	}

	cmd := exec.CommandContext(ctx, cfg.Cargo, args...)
	cmd.Dir = cfg.Dir

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeMetadata, err, "%s metadata: %s", cfg.Cargo, strings.TrimSpace(errBuf.String()))
	}
	return DecodeMetadata(&out)
}

// StaticSource serves a fixed graph regardless of configuration.
type StaticSource struct {
	Graph *Graph
}

// Metadata returns s.Graph, or an ErrCodeMetadata error if it is nil.
func (s StaticSource) Metadata(ctx context.Context, cfg Config) (*Graph, error) {
	if s.Graph == nil {
		return nil, errors.New(errors.ErrCodeMetadata, "no graph")
	}
	return s.Graph, nil
}

// Load obtains the build graph from src and verifies that its root package
// is present. Any failure is fatal to the caller; no partial graph is
// returned.
func Load(ctx context.Context, src Source, cfg Config) (*Graph, error) {
	g, err := src.Metadata(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, errors.New(errors.ErrCodeMetadata, "metadata source returned no graph")
	}
	if _, ok := g.RootPackage(); !ok {
		return nil, errors.New(errors.ErrCodeRootNotFound, "root package %q not found in build graph", g.Root)
	}
	return g, nil
}

var (
	_ Source = CommandSource{}
	_ Source = StaticSource{}
)
