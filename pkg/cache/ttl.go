package cache

import (
	"context"
	"time"
)

// TTLCache wraps a Cache and replaces the ttl of every Set, so a configured
// expiry applies to placements and artifacts alike.
type TTLCache struct {
	Cache
	ttl time.Duration
}

// WithTTL returns c with every entry stored for ttl. A ttl of zero or less
// returns c unchanged.
func WithTTL(c Cache, ttl time.Duration) Cache {
	if ttl <= 0 {
		return c
	}
	return &TTLCache{Cache: c, ttl: ttl}
}

// Set stores data with the configured ttl.
func (c *TTLCache) Set(ctx context.Context, key string, data []byte, _ time.Duration) error {
	return c.Cache.Set(ctx, key, data, c.ttl)
}

// Clear forwards to the wrapped cache when it supports clearing.
func (c *TTLCache) Clear(ctx context.Context) (int, error) {
	if cl, ok := c.Cache.(Clearer); ok {
		return cl.Clear(ctx)
	}
	return 0, nil
}
