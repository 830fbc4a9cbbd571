// Package cache stores rendered figure artifacts between runs.
//
// Rendering the packing figure at 300 dpi takes long enough that repeated
// invocations with an unchanged configuration should not redo the work. The
// [Cache] interface has two implementations: [FileCache], which keeps one
// JSON file per entry under a directory, and [NullCache], which stores
// nothing and is used when caching is disabled.
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes every input that affects
// the output bytes; [ScopedKeyer] prefixes keys so that different builds of
// the tool never share entries.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}
