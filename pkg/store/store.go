// Package store persists fetched repository documents and artifacts.
//
// Keys are slash-separated relative paths produced by the coordinate
// sanitizer (e.g. "metadata/org/example/core/maven-metadata.xml"). The
// default [FileStore] materializes keys as files under a cache root, giving
// the on-disk layout:
//
//	<root>/metadata/<group>/<artifact>/maven-metadata.xml
//	<root>/pom/<group>/<artifact>/<artifact>-<version>.pom
//	<root>/jar/<artifact>-<version><postfix>.jar
//
// Alternative backends (Redis, MongoDB) store the same keys in a shared
// server so multiple machines can reuse one cache. Entries carry no TTL:
// released Maven artifacts are immutable, so a cached document never goes
// stale.
package store

import "context"

// Store is a read-through/write-through byte store keyed by relative path.
//
// Implementations are written to at most once per key in normal operation:
// callers only Set freshly fetched, non-empty content, and a key that
// already exists is reused on every later run.
type Store interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value, creating any intermediate structure needed.
	Set(ctx context.Context, key string, data []byte) error

	// Has reports whether a key exists without reading its content.
	Has(ctx context.Context, key string) (bool, error)

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
