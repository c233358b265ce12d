package store

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"manualqa/internal/config"
	"manualqa/internal/data/redisStore"
	"manualqa/internal/domain/sessionModel"
	"manualqa/pkg/logger_i"
)

// RedisSessionStore is an append-only log of answered questions, one keyed
// record per session plus a list of ids for chronological replay.
type RedisSessionStore struct {
	redis  *redisStore.RedisStore
	logger *logger_i.Logger
}

func NewRedisSessionStore(redis *redisStore.RedisStore) *RedisSessionStore {
	return &RedisSessionStore{
		redis:  redis,
		logger: logger_i.NewLogger("RedisSessionStore"),
	}
}

func (s *RedisSessionStore) Append(ctx context.Context, record sessionModel.SessionRecord) (string, error) {
	if record.Id == "" {
		record.Id = uuid.NewString()
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return "", err
	}

	if err := s.redis.Set(ctx, record.Id, raw, config.RedisSessionStoreTTL); err != nil {
		return "", err
	}
	if err := s.redis.Append(ctx, config.SessionLogKey, []byte(record.Id)); err != nil {
		return "", err
	}

	s.logger.Debug("session logged", "sessionId", record.Id)
	return record.Id, nil
}
