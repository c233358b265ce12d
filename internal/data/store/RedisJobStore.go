package store

import (
	"context"
	"encoding/json"

	"manualqa/internal/config"
	"manualqa/internal/data/redisStore"
	"manualqa/internal/domain/jobModel"
	"manualqa/pkg/logger_i"
)

// RedisJobStore persists jobs so status survives a restart. Keys expire
// after the job TTL.
type RedisJobStore struct {
	redis  *redisStore.RedisStore
	logger *logger_i.Logger
}

func NewRedisJobStore(redis *redisStore.RedisStore) *RedisJobStore {
	return &RedisJobStore{
		redis:  redis,
		logger: logger_i.NewLogger("RedisJobStore"),
	}
}

func (s *RedisJobStore) GetJob(ctx context.Context, jobId string) (jobModel.Job, bool) {
	raw, found, err := s.redis.Get(ctx, jobId)
	if err != nil {
		s.logger.Error("job read failed", "jobId", jobId, "error", err)
		return jobModel.Job{}, false
	}
	if !found {
		return jobModel.Job{}, false
	}

	var job jobModel.Job
	if err := json.Unmarshal(raw, &job); err != nil {
		s.logger.Error("job decode failed", "jobId", jobId, "error", err)
		return jobModel.Job{}, false
	}
	return job, true
}

func (s *RedisJobStore) SaveJob(ctx context.Context, job jobModel.Job) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, job.Id, raw, config.RedisJobStoreTTL)
}

func (s *RedisJobStore) DeleteJob(ctx context.Context, jobID string) {
	if err := s.redis.Delete(ctx, jobID); err != nil {
		s.logger.Error("job delete failed", "jobId", jobID, "error", err)
	}
}
