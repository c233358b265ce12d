package redisStore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"manualqa/internal/config"
	"manualqa/pkg/logger_i"
)

// RedisStore is a thin wrapper over one logical redis database.
type RedisStore struct {
	client *redis.Client
	logger *logger_i.Logger
}

// NewStore connects and pings. Callers fall back to the in-memory stores
// when this errors.
func NewStore(db int) (*RedisStore, error) {
	logger := logger_i.NewLogger("RedisStore")

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping db %d: %w", db, err)
	}

	logger.Info("redis connected", "db", db)
	return &RedisStore{client: client, logger: logger}, nil
}

// NewTestStore wires an arbitrary address without a startup ping, for tests
// against miniredis.
func NewTestStore(addr string, db int) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr, DB: db}),
		logger: logger_i.NewLogger("RedisStore"),
	}
}
