package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports analysis and probe events as debug log lines. It is
// registered only with --verbose.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnLoadStart(_ context.Context, manifestPath string) {
	if manifestPath == "" {
		manifestPath = "(default)"
	}
	h.logger.Debug("running cargo metadata", "manifest", manifestPath)
}

func (h logHooks) OnLoadComplete(_ context.Context, _ string, packages int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("cargo metadata failed", "err", err, "duration", d.Round(time.Millisecond))
		return
	}
	h.logger.Debug("cargo metadata done", "packages", packages, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnDetect(_ context.Context, rootDeps, otherDeps, duplicates int) {
	h.logger.Debug("computed name sets", "root", rootDeps, "other", otherDeps, "duplicates", duplicates)
}

func (h logHooks) OnProbe(_ context.Context, pattern string, found bool, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("probe failed", "pattern", pattern, "err", err)
		return
	}
	h.logger.Debug("probe", "pattern", pattern, "found", found, "duration", d.Round(time.Millisecond))
}
