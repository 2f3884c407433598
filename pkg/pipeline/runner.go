package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cargo-dupdeps/pkg/cargo"
	"github.com/matzehuels/cargo-dupdeps/pkg/dupes"
	"github.com/matzehuels/cargo-dupdeps/pkg/errors"
	"github.com/matzehuels/cargo-dupdeps/pkg/observability"
	"github.com/matzehuels/cargo-dupdeps/pkg/usage"
)

// Runner wires a metadata source and a verifier into the analysis pipeline.
// It holds no per-run state; every Run loads and computes everything afresh.
type Runner struct {
	Source   cargo.Source
	Verifier *usage.Verifier
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil logger is replaced by log.Default().
func NewRunner(src cargo.Source, v *usage.Verifier, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Source:   src,
		Verifier: v,
		Logger:   logger,
	}
}

// Run executes load, detect and verify in order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Report, error) {
	if r.Source == nil || r.Verifier == nil || r.Verifier.Searcher == nil {
		return nil, errors.New(errors.ErrCodeInternal, "runner needs a metadata source and a searcher")
	}
	cfg := opts.Config.WithDefaults()

	if opts.Preflight {
		m, err := cargo.Preflight(cfg)
		if err != nil {
			return nil, err
		}
		r.Logger.Debug("read manifest",
			"path", m.Path,
			"package", m.Package.Name,
			"declared", m.DeclaredDependencies())
	}

	// Stage 1: Load
	g, loadTime, err := r.load(ctx, cfg)
	if err != nil {
		return nil, err
	}
	report := &Report{Graph: g}
	report.Stats.LoadTime = loadTime

	r.Logger.Info("loaded build graph",
		"root", g.Root,
		"packages", len(g.Packages),
		"duration", loadTime.Round(time.Millisecond))

	// Stage 2: Detect
	sets, err := dupes.Detect(g)
	if err != nil {
		return nil, err
	}
	report.Sets = sets
	observability.Analysis().OnDetect(ctx, sets.RootDeps.Len(), sets.OtherDeps.Len(), sets.Duplicates.Len())

	r.Logger.Info("detected duplicates",
		"root_deps", sets.RootDeps.Len(),
		"other_deps", sets.OtherDeps.Len(),
		"duplicates", sets.Duplicates.Len())

	// Stage 3: Verify
	if sets.Duplicates.Len() == 0 {
		report.Findings = []usage.Finding{}
		return report, nil
	}
	verifyStart := time.Now()
	findings, err := r.Verifier.VerifyAll(ctx, sets.Duplicates.Sorted())
	if err != nil {
		return nil, err
	}
	report.Findings = findings
	report.Stats.VerifyTime = time.Since(verifyStart)

	for _, f := range report.Unknown() {
		r.Logger.Warn("could not check usage", "crate", f.Name, "err", f.Err)
	}
	r.Logger.Info("verified usage",
		"candidates", len(findings),
		"maybe_unused", len(report.MaybeUnused()),
		"duration", report.Stats.VerifyTime.Round(time.Millisecond))

	return report, nil
}

func (r *Runner) load(ctx context.Context, cfg cargo.Config) (*cargo.Graph, time.Duration, error) {
	hooks := observability.Analysis()
	hooks.OnLoadStart(ctx, cfg.ManifestPath)

	start := time.Now()
	g, err := cargo.Load(ctx, r.Source, cfg)
	elapsed := time.Since(start)

	var packages int
	if g != nil {
		packages = len(g.Packages)
	}
	hooks.OnLoadComplete(ctx, cfg.ManifestPath, packages, elapsed, err)
	return g, elapsed, err
}
