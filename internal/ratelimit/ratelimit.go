package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckAndSet takes the rate-limit slot for key+action if it is free.
// Returns true when the caller may proceed. A nil client disables limiting.
func CheckAndSet(ctx context.Context, rdb *redis.Client, key, action string, limit time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	redisKey := fmt.Sprintf("rate_limit:%s:%s", action, key)

	wasSet, err := rdb.SetNX(ctx, redisKey, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

// TTL reports how long the slot for key+action stays taken.
func TTL(ctx context.Context, rdb *redis.Client, key, action string) (time.Duration, error) {
	if rdb == nil {
		return 0, nil
	}
	redisKey := fmt.Sprintf("rate_limit:%s:%s", action, key)
	return rdb.TTL(ctx, redisKey).Result()
}

// Clear releases the slot for key+action, e.g. after a successful login.
func Clear(ctx context.Context, rdb *redis.Client, key, action string) error {
	if rdb == nil {
		return nil
	}
	redisKey := fmt.Sprintf("rate_limit:%s:%s", action, key)
	_, err := rdb.Del(ctx, redisKey).Result()
	return err
}
