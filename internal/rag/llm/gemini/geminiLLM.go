package gemini

import (
	"context"
	"strings"
	"sync"

	"google.golang.org/genai"

	"manualqa/internal/config"
	"manualqa/pkg/logger_i"
)

var (
	once     sync.Once
	instance *GeminiLLM
)

type GeminiLLM struct {
	client *genai.Client
	logger *logger_i.Logger
}

// GetProvider returns the shared Gemini completion provider, nil if the
// client could not be constructed. Callers must check.
func GetProvider() *GeminiLLM {
	once.Do(func() {
		logger := logger_i.NewLogger("GeminiLLM")

		client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: config.GeminiAPIKey,
		})
		if err != nil {
			logger.Error("could not create gemini client", "error", err)
			return
		}
		instance = &GeminiLLM{client: client, logger: logger}
		logger.Info("gemini llm ready", "model", config.GeminiModelName)
	})
	return instance
}

func (g *GeminiLLM) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, config.GeminiModelName,
		genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Text()), nil
}
