package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Biholo/planete-xplorer/domain"
)

// RedisLimiter is a fixed-window rate limiter backed by Redis. Each key gets
// a counter that expires at the end of the window; once the counter exceeds
// the limit the caller is rejected until the window rolls over.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

// NewRedisLimiter creates a limiter allowing limit requests per window.
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: "ratelimit",
	}
}

// Allow implements domain.RateLimiter. Errors from Redis are returned to the
// caller, which decides whether to fail open or closed.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// First hit in this window starts the clock. If the expire call
		// fails the key still counts requests, it just never resets, so
		// surface the error.
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= l.limit, nil
}

var _ domain.RateLimiter = (*RedisLimiter)(nil)
