package googleEmbedding

import (
	"context"
	"errors"
	"sync"

	"google.golang.org/genai"

	"manualqa/internal/config"
	"manualqa/pkg/logger_i"
)

var (
	once     sync.Once
	instance *GoogleClient
)

// GoogleClient embeds text with the Gemini embedding model.
type GoogleClient struct {
	client *genai.Client
	logger *logger_i.Logger
}

// GetClient returns the shared Gemini embedding client, nil if the client
// could not be constructed. Callers must check.
func GetClient() *GoogleClient {
	once.Do(func() {
		logger := logger_i.NewLogger("GoogleEmbedding")

		client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: config.GeminiAPIKey,
		})
		if err != nil {
			logger.Error("could not create gemini client", "error", err)
			return
		}
		instance = &GoogleClient{client: client, logger: logger}
		logger.Info("gemini embedding client ready", "model", config.GeminiEmbeddingModel)
	})
	return instance
}

func (g *GoogleClient) Embed(ctx context.Context, text string) ([]float32, error) {
	dimension := int32(config.EmbeddingOutputDimensionality)

	var values []float32
	err := withRetry(ctx, g.logger, func() error {
		result, err := g.client.Models.EmbedContent(ctx, config.GeminiEmbeddingModel,
			genai.Text(text),
			&genai.EmbedContentConfig{
				OutputDimensionality: &dimension,
				TaskType:             "RETRIEVAL_DOCUMENT",
			})
		if err != nil {
			return err
		}
		if len(result.Embeddings) == 0 {
			return errors.New("empty embedding response")
		}
		values = result.Embeddings[0].Values
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}
