package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RateLimitResult is the outcome of one counted request.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// RateLimiter counts requests per key in fixed windows.
type RateLimiter struct {
	client goredis.Cmdable
	prefix string
	now    func() time.Time
}

func NewRateLimiter(client goredis.Cmdable) *RateLimiter {
	return &RateLimiter{client: client, prefix: "mkt:ratelimit:", now: time.Now}
}

// Allow counts one request for key in the current window. The counter and
// its expiry are written in one MULTI so a crash cannot leave a key without TTL.
func (l *RateLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error) {
	if window < time.Second {
		window = time.Second
	}
	now := l.now()
	windowID := now.UnixNano() / int64(window)
	redisKey := l.prefix + key + ":" + strconv.FormatInt(windowID, 10)

	var incr *goredis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		incr = p.Incr(ctx, redisKey)
		p.Expire(ctx, redisKey, window+time.Second)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rate limit %s: %w", key, err)
	}

	count := incr.Val()
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return &RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   time.Unix(0, (windowID+1)*int64(window)),
	}, nil
}
