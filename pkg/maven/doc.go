// Package maven resolves Maven coordinates against a remote repository and
// walks their transitive compile-scope dependencies.
//
// The entry points are [Coordinate] (a group/artifact pair bound to a
// repository), [Package] (a coordinate plus a version, possibly symbolic),
// and [Resolver] (the fetch/cache machinery for metadata documents, POM
// descriptors and jar artifacts). [Walker] drives the recursive dependency
// expansion and records the result as a graph.
//
// Symbolic versions ("latest", "release", or an empty version) are resolved
// to concrete version strings through the repository's maven-metadata.xml.
// Resolution is an explicit step - call [Package.Resolve] before using
// [Package.Key] - and is memoized for the lifetime of the Package.
//
// Fetched documents are cached twice: in memory on the owning object for
// the life of the process, and in a [store.Store] shared across runs.
// Cached entries are never invalidated; released Maven artifacts are
// immutable.
package maven
