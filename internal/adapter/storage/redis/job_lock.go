package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const defaultJobLockTTL = 10 * time.Minute

// JobLock is a SET NX lease keyed per job. The value is a random owner
// token so a run whose lease expired cannot free a newer owner's lock.
type JobLock struct {
	client goredis.Cmdable
	prefix string
}

// NewJobLock creates a Redis-backed job lock.
func NewJobLock(client goredis.Cmdable) *JobLock {
	return &JobLock{client: client, prefix: "mkt:joblock:"}
}

func (l *JobLock) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("lock key is required")
	}
	if ttl <= 0 {
		ttl = defaultJobLockTTL
	}

	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.prefix+key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("setnx %s: %w", key, err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *JobLock) Release(ctx context.Context, key string, token string) error {
	if token == "" {
		return nil
	}
	owner, err := l.client.Get(ctx, l.prefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil
		}
		return fmt.Errorf("read lock owner: %w", err)
	}
	if owner != token {
		return nil
	}
	if err := l.client.Del(ctx, l.prefix+key).Err(); err != nil {
		return fmt.Errorf("delete lock: %w", err)
	}
	return nil
}

var _ ports.JobLock = (*JobLock)(nil)
