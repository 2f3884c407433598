// Package pipeline runs the complete duplicate-dependency analysis.
//
// The analysis has three stages, run strictly in order:
//
//  1. Load: obtain the resolved build graph ([cargo.Load])
//  2. Detect: compute root, other and duplicate name sets ([dupes.Detect])
//  3. Verify: probe the source tree for each duplicate ([usage.Verifier])
//
// A failure in Load or Detect aborts the run and no [Report] is produced.
// Failures while probing a single candidate are recorded on that candidate's
// finding and do not stop the run.
//
// # Usage
//
//	runner := pipeline.NewRunner(cargo.CommandSource{}, &usage.Verifier{
//	    Searcher: usage.Ripgrep{},
//	}, logger)
//	report, err := runner.Run(ctx, pipeline.Options{Config: cfg, Preflight: true})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.MaybeUnused())
package pipeline

import (
	"time"

	"github.com/matzehuels/cargo-dupdeps/pkg/cargo"
	"github.com/matzehuels/cargo-dupdeps/pkg/dupes"
	"github.com/matzehuels/cargo-dupdeps/pkg/usage"
)

// Options configures a single run.
type Options struct {
	Config cargo.Config // Passed unchanged to the metadata source

	// Preflight reads Cargo.toml before running the metadata source so that
	// missing or virtual manifests fail early with a clear message.
	Preflight bool
}

// Report is the outcome of a completed run.
type Report struct {
	Graph    *cargo.Graph    // Loaded build graph
	Sets     *dupes.Result   // Root, other and duplicate name sets
	Findings []usage.Finding // One per duplicate, sorted by name
	Stats    Stats
}

// Stats records stage timings.
type Stats struct {
	LoadTime   time.Duration
	VerifyTime time.Duration
}

// MaybeUnused returns the duplicates with no textual evidence of use, sorted.
func (r *Report) MaybeUnused() []string {
	return r.names(usage.MaybeUnused)
}

// Used returns the duplicates a probe matched, sorted.
func (r *Report) Used() []string {
	return r.names(usage.Used)
}

// Unknown returns findings whose probes failed, sorted by name.
func (r *Report) Unknown() []usage.Finding {
	var out []usage.Finding
	for _, f := range r.Findings {
		if f.Verdict == usage.Unknown {
			out = append(out, f)
		}
	}
	return out
}

func (r *Report) names(v usage.Verdict) []string {
	out := []string{}
	for _, f := range r.Findings {
		if f.Verdict == v {
			out = append(out, f.Name)
		}
	}
	return out
}
