package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache is the fast path in front of the idempotency_logs table.
// A miss here is never authoritative; the database row is.
type IdempotencyCache struct {
	client goredis.Cmdable
	prefix string
}

// NewIdempotencyCache creates a new Redis-backed idempotency cache.
func NewIdempotencyCache(client goredis.Cmdable) *IdempotencyCache {
	return &IdempotencyCache{
		client: client,
		prefix: "mkt:idempotency:",
	}
}

// Get returns the cached result for key, or nil when there is none.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}
	return val, nil
}

func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}

var _ ports.IdempotencyCache = (*IdempotencyCache)(nil)
