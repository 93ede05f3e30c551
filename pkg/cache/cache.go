// Package cache stores rendered documents between runs.
//
// Rendering is deterministic: the same outline text rendered to the same
// format by the same build always produces the same bytes. [ArtifactKey]
// captures exactly those inputs, so a cached artifact can be reused without
// re-running the pipeline (which matters most for PDF and PNG, where
// conversion shells out to rsvg-convert).
//
// Two implementations are provided:
//
//   - [FileCache]: one JSON entry file per key below a directory
//   - [NullCache]: stores nothing; the default when caching is off
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the data for key and whether it was found.
	// Expired or unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}
