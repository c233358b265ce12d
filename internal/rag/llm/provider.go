package llm

import "context"

// Provider is one answer-generating model behind a single completion call.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
