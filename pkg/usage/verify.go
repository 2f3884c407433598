package usage

import (
	"context"
	stderrors "errors"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/cargo-dupdeps/pkg/errors"
	"github.com/matzehuels/cargo-dupdeps/pkg/observability"
)

// Verdict is the outcome of checking one candidate.
type Verdict int

const (
	// Unknown means no probe matched and at least one probe failed.
	Unknown Verdict = iota
	// Used means a probe found the identifier.
	Used
	// MaybeUnused means every probe ran and none matched.
	MaybeUnused
)

// String returns the verdict name used in reports.
func (v Verdict) String() string {
	switch v {
	case Used:
		return "used"
	case MaybeUnused:
		return "maybe unused"
	default:
		return "unknown"
	}
}

// Finding is the verdict for one candidate.
type Finding struct {
	Name       string  // Package name as declared
	Identifier string  // Normalized in-source identifier
	Verdict    Verdict // Outcome
	Evidence   string  // Pattern that matched, for Used
	Err        error   // Probe failures, for Unknown
}

// DefaultTimeout bounds a single probe when Verifier.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Verifier runs the usage probes for duplicate candidates.
type Verifier struct {
	Searcher Searcher
	Timeout  time.Duration // Per-probe bound; negative disables it
	Jobs     int           // Concurrent candidates in VerifyAll (default: 1)
}

// Verify checks a single candidate. Probe errors never escape; they are
// reported on the Finding with an Unknown verdict.
func (v *Verifier) Verify(ctx context.Context, name string) Finding {
	f := Finding{Name: name, Identifier: Normalize(name)}
	if err := errors.ValidatePackageName(name); err != nil {
		f.Err = err
		return f
	}

	var errs []error
	for _, pattern := range Probes(name) {
		found, err := v.probe(ctx, pattern)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if found {
			f.Verdict = Used
			f.Evidence = pattern
			return f
		}
	}

	if len(errs) > 0 {
		f.Verdict = Unknown
		f.Err = stderrors.Join(errs...)
		return f
	}
	f.Verdict = MaybeUnused
	return f
}

func (v *Verifier) probe(ctx context.Context, pattern string) (bool, error) {
	timeout := v.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	pctx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		pctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	found, err := v.Searcher.Search(pctx, pattern)
	if err != nil && ctx.Err() == nil && stderrors.Is(err, context.DeadlineExceeded) {
		err = errors.Wrap(errors.ErrCodeTimeout, err, "probe %q timed out after %s", pattern, timeout)
	}
	observability.Probe().OnProbe(ctx, pattern, found, time.Since(start), err)
	return found, err
}

// VerifyAll checks every candidate, running at most Jobs candidates at a
// time, and returns findings sorted by name. It returns an error only when
// ctx is cancelled; per-candidate failures are reported on the findings.
func (v *Verifier) VerifyAll(ctx context.Context, names []string) ([]Finding, error) {
	findings := make([]Finding, len(names))

	var g errgroup.Group
	g.SetLimit(max(v.Jobs, 1))
	for i, name := range names {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			findings[i] = v.Verify(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(findings, func(a, b Finding) int {
		return strings.Compare(a.Name, b.Name)
	})
	return findings, nil
}
