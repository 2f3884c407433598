// Package dupes finds duplicate dependencies in a build graph.
//
// A duplicate is a dependency the root package declares directly that some
// other package in the graph also declares. [Detect] derives three name sets:
//
//   - RootDeps: names the root package declares
//   - OtherDeps: names declared by any package other than the root
//   - Duplicates: RootDeps ∩ OtherDeps
//
// Names are compared as exact strings. Dependency kind, version requirement
// and features are ignored; only presence matters.
package dupes
