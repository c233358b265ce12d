package redisStore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Get returns (nil, false, nil) for a missing key so callers can tell
// absence from failure.
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisStore) Append(ctx context.Context, listKey string, value []byte) error {
	return r.client.RPush(ctx, listKey, value).Err()
}

func (r *RedisStore) List(ctx context.Context, listKey string) ([]string, error) {
	return r.client.LRange(ctx, listKey, 0, -1).Result()
}
