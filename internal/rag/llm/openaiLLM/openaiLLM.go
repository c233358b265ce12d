package openaiLLM

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"manualqa/internal/config"
	"manualqa/pkg/logger_i"
)

var (
	once     sync.Once
	instance *OpenAILLM
)

type OpenAILLM struct {
	client openai.Client
	logger *logger_i.Logger
}

// GetProvider returns the shared OpenAI completion provider, nil if no API
// key is configured. Callers must check.
func GetProvider() *OpenAILLM {
	once.Do(func() {
		logger := logger_i.NewLogger("OpenAILLM")

		if config.OpenAIAPIKey == "" {
			logger.Error("OPENAI_API_KEY not set")
			return
		}
		instance = &OpenAILLM{
			client: openai.NewClient(option.WithAPIKey(config.OpenAIAPIKey)),
			logger: logger,
		}
		logger.Info("openai llm ready")
	})
	return instance
}

func (o *OpenAILLM) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModelGPT4oMini,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
