package usage

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/matzehuels/cargo-dupdeps/pkg/errors"
)

// Searcher reports whether a literal pattern occurs anywhere in a source
// tree. found is meaningful only when err is nil.
type Searcher interface {
	Search(ctx context.Context, pattern string) (found bool, err error)
}

// DefaultRipgrep is the search binary used when Ripgrep.Path is empty.
const DefaultRipgrep = "rg"

// Ripgrep searches with `rg --fixed-strings --quiet`. Exit status 0 means a
// match, 1 means no match; anything else, including failure to start rg, is
// an ErrCodeSearch error.
type Ripgrep struct {
	Path string // rg binary (default: "rg")
	Dir  string // Tree to search (default: ".")
}

// Search implements Searcher.
func (r Ripgrep) Search(ctx context.Context, pattern string) (bool, error) {
	bin := r.Path
	if bin == "" {
		bin = DefaultRipgrep
	}
	dir := r.Dir
	if dir == "" {
		// rg reads stdin instead of the tree when no path is given and
		// stdin is not a terminal.
		dir = "."
	}

	cmd := exec.CommandContext(ctx, bin, "--fixed-strings", "--quiet", "--", pattern, dir)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, errors.Wrap(errors.ErrCodeSearch, err, "%s %q: %s", bin, pattern, strings.TrimSpace(errBuf.String()))
}

// MemorySearcher searches an in-memory set of files, keyed by path.
type MemorySearcher map[string]string

// Search implements Searcher.
func (m MemorySearcher) Search(ctx context.Context, pattern string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	for _, content := range m {
		if strings.Contains(content, pattern) {
			return true, nil
		}
	}
	return false, nil
}

var (
	_ Searcher = Ripgrep{}
	_ Searcher = MemorySearcher{}
)
