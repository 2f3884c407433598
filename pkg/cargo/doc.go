// Package cargo loads the resolved build graph of a Rust package.
//
// # Overview
//
// The graph comes from an external metadata provider, normally
// `cargo metadata --format-version 1`, hidden behind the [Source] interface.
// [CommandSource] shells out to cargo; [StaticSource] serves a fixed graph for
// tests and embedding.
//
//	cfg := cargo.ConfigFromArgs(os.Args[1:], os.Getenv)
//	g, err := cargo.Load(ctx, cargo.CommandSource{}, cfg)
//
// [Load] enforces the one invariant every caller relies on: the graph names
// a root package and that package is present in [Graph.Packages]. A virtual
// workspace, or a provider response without a root, is a fatal error.
//
// # Configuration
//
// [Config] is built once at the process boundary. [ManifestPathFromArgs]
// accepts both `--manifest-path PATH` and `--manifest-path=PATH`, the same
// forms cargo passes through when the tool runs as `cargo dupdeps`.
//
// # Manifest Preflight
//
// [FindManifest] and [ReadManifest] locate and parse Cargo.toml so that
// obviously unusable manifests fail before cargo is started.
package cargo
