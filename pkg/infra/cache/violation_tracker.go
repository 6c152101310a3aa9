package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/go-redis/redis/v8"
)

const DefaultViolationWindow = 24 * time.Hour

type violationTracker struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewViolationTracker counts violations per user in a rolling window: every
// new violation pushes the expiry of the counter forward by ttl.
func NewViolationTracker(redisClient *redis.Client, ttl time.Duration) moderation.ViolationCounter {
	if ttl <= 0 {
		ttl = DefaultViolationWindow
	}
	return &violationTracker{
		redis: redisClient,
		ttl:   ttl,
	}
}

func (t *violationTracker) Increment(ctx context.Context, userID string) (int64, error) {
	key := fmt.Sprintf(ViolationCountKeyPattern, userID)
	count, err := t.redis.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if err := t.redis.Expire(ctx, key, t.ttl).Err(); err != nil {
		return count, err
	}
	return count, nil
}

func (t *violationTracker) Count(ctx context.Context, userID string) (int64, error) {
	count, err := t.redis.Get(ctx, fmt.Sprintf(ViolationCountKeyPattern, userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}
