package cache

import (
	"context"
	"time"
)

// NullCache is a no-op cache. Every Get is a miss and writes are
// discarded. Useful for tests and for running with caching disabled.
type NullCache struct{}

// NewNullCache creates a new null cache.
func NewNullCache() *NullCache { return &NullCache{} }

// Get always returns a cache miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the value.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete is a no-op.
func (c *NullCache) Delete(ctx context.Context, key string) error { return nil }

// Close is a no-op.
func (c *NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
