// Package cli implements the cargo-dupdeps command-line interface.
//
// The tool runs as a standalone binary or as a cargo subcommand
// (`cargo dupdeps`). It loads the build graph with `cargo metadata`, lists
// dependencies the root package declares that other packages also declare,
// and flags the ones with no textual evidence of direct use.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log; --verbose (-v) switches to
// debug level and also logs every probe. The report goes to stdout.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// rgEnv overrides the search binary when --rg is not given.
const rgEnv = "DUPDEPS_RG"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out    io.Writer
	getenv func(string) string
	args   []string
}

// New creates a new CLI instance that logs to w and writes reports to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
		getenv: os.Getenv,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects the report.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// Execute runs the root command with args (without the program name).
// The raw args are kept so the manifest path can be read the way cargo
// passes it.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	c.args = args
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
