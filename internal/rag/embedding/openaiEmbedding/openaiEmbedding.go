package openaiEmbedding

import (
	"context"
	"errors"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"manualqa/internal/config"
	"manualqa/pkg/logger_i"
)

var (
	once     sync.Once
	instance *OpenAIClient
)

// OpenAIClient embeds text with text-embedding-3-small, dimension-reduced
// to match the index mapping.
type OpenAIClient struct {
	client openai.Client
	logger *logger_i.Logger
}

// GetClient returns the shared OpenAI embedding client, nil if no API key
// is configured. Callers must check.
func GetClient() *OpenAIClient {
	once.Do(func() {
		logger := logger_i.NewLogger("OpenAIEmbedding")

		if config.OpenAIAPIKey == "" {
			logger.Error("OPENAI_API_KEY not set")
			return
		}
		instance = &OpenAIClient{
			client: openai.NewClient(option.WithAPIKey(config.OpenAIAPIKey)),
			logger: logger,
		}
		logger.Info("openai embedding client ready")
	})
	return instance
}

func (o *OpenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := o.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input:      openai.EmbeddingNewParamsInputUnion{OfString: openai.String(text)},
		Model:      openai.EmbeddingModelTextEmbedding3Small,
		Dimensions: openai.Int(config.EmbeddingOutputDimensionality),
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("empty embedding response")
	}

	values := make([]float32, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		values[i] = float32(v)
	}
	return values, nil
}
