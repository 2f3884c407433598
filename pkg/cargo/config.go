package cargo

import (
	"strings"

	"github.com/matzehuels/cargo-dupdeps/pkg/errors"
)

const (
	// manifestPathFlag is the flag cargo uses for manifest overrides.
	manifestPathFlag = "--manifest-path"

	// DefaultCargo is the cargo binary used when $CARGO is unset.
	DefaultCargo = "cargo"
)

// Config controls how the build graph is loaded. It is populated once at
// the process boundary and passed by value; nothing below that boundary reads
// process arguments or the environment.
type Config struct {
	ManifestPath string // Manifest override; empty means cargo's own discovery
	Cargo        string // cargo binary (default: "cargo")
	Dir          string // Working directory for the provider (default: current)
}

// WithDefaults returns a copy of Config with zero values replaced by defaults.
func (c Config) WithDefaults() Config {
	cfg := c
	if cfg.Cargo == "" {
		cfg.Cargo = DefaultCargo
	}
	return cfg
}

// ManifestPathFromArgs scans args for the first argument beginning with
// "--manifest-path". If that argument is exactly the flag, the following
// argument is the path; otherwise the "--manifest-path=" prefix is stripped
// and the remainder is the path. ok is false when no argument matches.
func ManifestPathFromArgs(args []string) (path string, ok bool, err error) {
	for i, arg := range args {
		if !strings.HasPrefix(arg, manifestPathFlag) {
			continue
		}
		if arg == manifestPathFlag {
			if i+1 >= len(args) {
				return "", false, errors.New(errors.ErrCodeInvalidInput, "%s requires a value", manifestPathFlag)
			}
			return args[i+1], true, nil
		}
		return strings.TrimPrefix(arg, manifestPathFlag+"="), true, nil
	}
	return "", false, nil
}

// ConfigFromArgs builds a Config from raw process arguments and an
// environment lookup function (usually os.Getenv). Arguments other than the
// manifest path are ignored.
func ConfigFromArgs(args []string, getenv func(string) string) (Config, error) {
	var cfg Config
	path, ok, err := ManifestPathFromArgs(args)
	if err != nil {
		return Config{}, err
	}
	if ok {
		cfg.ManifestPath = path
	}
	if getenv != nil {
		cfg.Cargo = getenv("CARGO")
	}
	return cfg.WithDefaults(), nil
}
