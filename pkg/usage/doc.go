// Package usage guesses whether the root package still uses a dependency
// directly.
//
// # Heuristic
//
// A candidate name is normalized to its in-source identifier (hyphens become
// underscores, so "left-pad" is written left_pad in Rust source). Two
// fixed-string probes then run against the source tree:
//
//   - "use <identifier>"
//   - "<identifier>::"
//
// If either probe matches, the dependency is [Used]. If both run cleanly and
// neither matches, it is [MaybeUnused]. If a probe cannot give an answer (the
// search tool is missing, crashes or times out) and nothing matched, the
// verdict is [Unknown] and the error is kept on the [Finding].
//
// This is a textual check, not a semantic one. Matches inside comments or
// string literals count as use; renamed imports (`package = "..."`), macro-only
// use and glob re-exports are not detected. Treat MaybeUnused as a prompt to
// look, not as proof.
//
// # Searchers
//
// [Ripgrep] shells out to rg. [MemorySearcher] searches an in-memory file set
// and is meant for tests.
package usage
