package cache

import (
	"context"
	"time"
)

// NullCache never stores anything. capfig uses it for --no-cache and when
// no cache directory can be located. Calls with a cancelled context report
// the context error instead of a plain miss.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always misses.
func (c *NullCache) Get(ctx context.Context, _ string) ([]byte, bool, error) {
	return nil, false, ctx.Err()
}

// Set drops data.
func (c *NullCache) Set(ctx context.Context, _ string, _ []byte, _ time.Duration) error {
	return ctx.Err()
}

// Delete has nothing to remove.
func (c *NullCache) Delete(ctx context.Context, _ string) error {
	return ctx.Err()
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
