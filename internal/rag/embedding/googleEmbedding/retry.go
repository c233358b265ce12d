package googleEmbedding

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"manualqa/internal/config"
	"manualqa/pkg/logger_i"
)

// withRetry re-runs fn on quota exhaustion with exponential backoff.
// Any other error returns immediately.
func withRetry(ctx context.Context, logger *logger_i.Logger, fn func() error) error {
	backoff := config.EmbeddingRetryBaseDelay

	var err error
	for attempt := 0; attempt < config.EmbeddingMaxRetries; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		st, ok := status.FromError(err)
		if !ok || st.Code() != codes.ResourceExhausted {
			return err
		}

		logger.Warn("quota exhausted, backing off", "attempt", attempt+1, "delay", backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
		backoff *= 2
	}
	return err
}
