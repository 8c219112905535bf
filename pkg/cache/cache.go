// Package cache stores rendered artifacts keyed by their render inputs.
//
// Rendering is deterministic: the same text, level, format and parameters
// always produce the same bytes. The HTTP server exploits that by caching
// artifacts under [ArtifactKey] and serving repeats straight from the cache.
//
// Backends:
//   - [FileCache]: one JSON file per entry under a directory (CLI and server)
//   - [MemoryCache]: bounded in-process map
//   - [NullCache]: stores nothing
//
// All implementations are safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
