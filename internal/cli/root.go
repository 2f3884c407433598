package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cargo-dupdeps/pkg/buildinfo"
	"github.com/matzehuels/cargo-dupdeps/pkg/cargo"
	"github.com/matzehuels/cargo-dupdeps/pkg/observability"
	"github.com/matzehuels/cargo-dupdeps/pkg/pipeline"
	"github.com/matzehuels/cargo-dupdeps/pkg/usage"
)

// checkOpts holds the command-line flags for the analysis.
type checkOpts struct {
	verbose      bool
	format       string        // text or json
	jobs         int           // concurrent candidates
	probeTimeout time.Duration // per-probe bound
	rg           string        // search binary
	sourceDir    string        // tree searched by probes
	noPreflight  bool          // skip reading Cargo.toml before cargo metadata
}

// RootCommand creates the root cobra command. The analysis runs on the root
// command itself so that `cargo dupdeps` (which passes "dupdeps" as the
// first argument) and `cargo-dupdeps` behave the same.
func (c *CLI) RootCommand() *cobra.Command {
	opts := checkOpts{
		format:       formatText,
		jobs:         1,
		probeTimeout: usage.DefaultTimeout,
	}

	root := &cobra.Command{
		Use:   "cargo-dupdeps [--manifest-path PATH]",
		Short: "Find direct dependencies that other crates in the graph already pull in",
		Long: `cargo-dupdeps lists dependencies the root package declares that other
packages in its build graph also declare, then searches the source tree for
"use <crate>" and "<crate>::". Duplicates with neither pattern are reported as
maybe unused.

The check is textual: comments, strings and renamed imports count as use or
are missed. Review each reported crate before removing it.

Requires cargo and ripgrep (rg) on PATH.`,
		Example: `  cargo dupdeps
  cargo dupdeps --manifest-path crates/app/Cargo.toml
  cargo-dupdeps --manifest-path=Cargo.toml --format json`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				c.SetLogLevel(LogDebug)
				observability.SetProbeHooks(logHooks{c.Logger})
				observability.SetAnalysisHooks(logHooks{c.Logger})
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.check(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.Flags()
	// Read from the raw arguments by cargo.ConfigFromArgs; declared here for
	// help output and value validation.
	flags.String("manifest-path", "", "path to Cargo.toml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&opts.format, "format", opts.format, "report format: text or json")
	flags.IntVar(&opts.jobs, "jobs", opts.jobs, "dependencies to check concurrently")
	flags.DurationVar(&opts.probeTimeout, "probe-timeout", opts.probeTimeout, "timeout for each source search")
	flags.StringVar(&opts.rg, "rg", "", "ripgrep binary (default $"+rgEnv+" or rg)")
	flags.StringVar(&opts.sourceDir, "source-dir", "", "source tree to search (default current directory)")
	flags.BoolVar(&opts.noPreflight, "no-preflight", false, "skip reading Cargo.toml before running cargo metadata")

	return root
}

// check runs the analysis and writes the report. Nothing is written to the
// report output unless every fatal stage succeeded.
func (c *CLI) check(ctx context.Context, opts checkOpts) error {
	logger := loggerFromContext(ctx)

	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("unknown format %q (available: %s, %s)", opts.format, formatText, formatJSON)
	}
	if opts.jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", opts.jobs)
	}

	cfg, err := cargo.ConfigFromArgs(c.args, c.getenv)
	if err != nil {
		return err
	}

	rg := opts.rg
	if rg == "" {
		rg = c.getenv(rgEnv)
	}
	timeout := opts.probeTimeout
	if timeout == 0 {
		timeout = -1
	}
	verifier := &usage.Verifier{
		Searcher: usage.Ripgrep{Path: rg, Dir: opts.sourceDir},
		Timeout:  timeout,
		Jobs:     opts.jobs,
	}

	if cfg.ManifestPath != "" {
		logger.Infof("Analyzing %s", cfg.ManifestPath)
	} else {
		logger.Info("Analyzing package in current directory")
	}

	prog := newProgress(logger)
	runner := pipeline.NewRunner(cargo.CommandSource{}, verifier, logger)
	report, err := runner.Run(ctx, pipeline.Options{Config: cfg, Preflight: !opts.noPreflight})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Checked %d duplicate dependencies", len(report.Findings)))

	return writeReport(c.out, report, opts.format)
}
