package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// AttemptCounter implements ports.AttemptCounter. Each increment refreshes
// the key's TTL, so the count resets only after a quiet window.
type AttemptCounter struct {
	client *goredis.Client
	prefix string
}

// NewAttemptCounter creates a new Redis-backed denied-attempt counter.
func NewAttemptCounter(client *goredis.Client) *AttemptCounter {
	return &AttemptCounter{
		client: client,
		prefix: keyPrefix + "attempts:",
	}
}

// Increment adds one attempt under key and returns the new count.
func (c *AttemptCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := c.prefix + key

	var incr *goredis.IntCmd
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("redis attempt incr: %w", err)
	}
	return incr.Val(), nil
}

// Count returns the attempts currently recorded under key.
func (c *AttemptCounter) Count(ctx context.Context, key string) (int64, error) {
	n, err := c.client.Get(ctx, c.prefix+key).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis attempt count: %w", err)
	}
	return n, nil
}
