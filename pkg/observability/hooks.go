// Package observability provides hooks for instrumenting an analysis run.
//
// Hooks let a host application observe graph loading and every text probe
// without the library depending on a metrics or tracing backend. All hooks
// default to no-ops; register implementations once at startup.
//
// # Usage
//
//	func main() {
//	    observability.SetAnalysisHooks(&myAnalysisHooks{})
//	    observability.SetProbeHooks(&myProbeHooks{})
//	    // ... run analysis
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Analysis().OnLoadStart(ctx, manifestPath)
//	// ... load graph ...
//	observability.Analysis().OnLoadComplete(ctx, manifestPath, packages, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Analysis Hooks
// =============================================================================

// AnalysisHooks receives events from the load and detect stages.
type AnalysisHooks interface {
	// OnLoadStart fires before the metadata provider runs. manifestPath is
	// empty when the provider uses its default discovery.
	OnLoadStart(ctx context.Context, manifestPath string)
	OnLoadComplete(ctx context.Context, manifestPath string, packages int, duration time.Duration, err error)

	// OnDetect fires once the name sets have been computed.
	OnDetect(ctx context.Context, rootDeps, otherDeps, duplicates int)
}

// =============================================================================
// Probe Hooks
// =============================================================================

// ProbeHooks receives events from the usage verifier.
type ProbeHooks interface {
	// OnProbe records one text search. err is set when the search tool
	// could not give an answer.
	OnProbe(ctx context.Context, pattern string, found bool, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAnalysisHooks is a no-op implementation of AnalysisHooks.
type NoopAnalysisHooks struct{}

func (NoopAnalysisHooks) OnLoadStart(context.Context, string)                               {}
func (NoopAnalysisHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopAnalysisHooks) OnDetect(context.Context, int, int, int)                           {}

// NoopProbeHooks is a no-op implementation of ProbeHooks.
type NoopProbeHooks struct{}

func (NoopProbeHooks) OnProbe(context.Context, string, bool, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	analysisHooks AnalysisHooks = NoopAnalysisHooks{}
	probeHooks    ProbeHooks    = NoopProbeHooks{}
	hooksMu       sync.RWMutex
)

// SetAnalysisHooks registers custom analysis hooks. Nil is ignored.
func SetAnalysisHooks(h AnalysisHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		analysisHooks = h
	}
}

// SetProbeHooks registers custom probe hooks. Nil is ignored.
func SetProbeHooks(h ProbeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		probeHooks = h
	}
}

// Analysis returns the registered analysis hooks.
func Analysis() AnalysisHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return analysisHooks
}

// Probe returns the registered probe hooks.
func Probe() ProbeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return probeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	analysisHooks = NoopAnalysisHooks{}
	probeHooks = NoopProbeHooks{}
}
