package embedding

import (
	"context"
	"math"
	"strings"

	"manualqa/internal/config"
	"manualqa/internal/metrics"
	"manualqa/pkg/logger_i"
)

// Client is one remote embedding model. Implementations live in the
// provider subpackages.
type Client interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Embedder is what the rest of the pipeline sees: preprocessed, batched,
// fault-absorbing embedding calls.
type Embedder interface {
	GetEmbedding(ctx context.Context, text string) ([]float32, error)
	BatchEmbedding(ctx context.Context, texts []string, batchSize int) [][]float32
	TestConnection(ctx context.Context) bool
}

type Manager struct {
	client Client
	logger *logger_i.Logger
}

func NewManager(client Client) *Manager {
	return &Manager{
		client: client,
		logger: logger_i.NewLogger("Embedding"),
	}
}

func (m *Manager) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	return m.client.Embed(ctx, preprocess(text, m.logger))
}

// BatchEmbedding returns exactly one vector per input text, in input order.
// A failed call for a single text becomes an all-zero vector rather than
// aborting the batch; the failure is logged and counted. Zero vectors carry
// no similarity signal under cosine.
func (m *Manager) BatchEmbedding(ctx context.Context, texts []string, batchSize int) [][]float32 {
	m.logger.Info("embedding batch start", "texts", len(texts))

	if batchSize <= 0 {
		batchSize = config.EmbeddingBatchSize
	}

	embeddings := make([][]float32, 0, len(texts))

	for i := 0; i < len(texts); i += batchSize {
		end := i + batchSize
		if end > len(texts) {
			end = len(texts)
		}

		for j, text := range texts[i:end] {
			vector, err := m.GetEmbedding(ctx, text)
			if err != nil {
				m.logger.Warn("embedding failed, substituting zero vector", "index", i+j, "error", err)
				metrics.IncrementEmbeddingFailures()
				vector = make([]float32, config.EmbeddingOutputDimensionality)
			}
			embeddings = append(embeddings, vector)
		}
		m.logger.Debug("embedding batch done", "batch", i/batchSize+1, "of", (len(texts)-1)/batchSize+1)
	}

	m.logger.Info("embedding batch complete", "vectors", len(embeddings))
	return embeddings
}

// TestConnection is the health probe: one fixed embedding call that must
// come back with the expected dimension.
func (m *Manager) TestConnection(ctx context.Context) bool {
	vector, err := m.GetEmbedding(ctx, "연결 테스트")
	if err != nil {
		m.logger.Error("embedding connection test failed", "error", err)
		return false
	}
	if len(vector) != config.EmbeddingOutputDimensionality {
		m.logger.Error("embedding connection test failed", "dimension", len(vector))
		return false
	}
	m.logger.Info("embedding connection test passed")
	return true
}

// preprocess cleans text before every embedding call: whitespace runs
// collapse to single spaces and anything beyond the character ceiling is
// hard-truncated with a marker. Client-side approximation of the remote
// model's token ceiling. The ceiling counts characters and truncation
// lands on a rune boundary, so korean text keeps its full budget and the
// remote model never sees broken utf-8.
func preprocess(text string, logger *logger_i.Logger) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if runes := []rune(text); len(runes) > config.EmbeddingMaxChars {
		text = string(runes[:config.EmbeddingMaxChars]) + "..."
		logger.Warn("text truncated before embedding", "limit", config.EmbeddingMaxChars)
	}
	return strings.Join(strings.Fields(text), " ")
}

// CosineSimilarity guards against zero-magnitude vectors by returning 0.0
// instead of NaN.
func CosineSimilarity(a []float32, b []float32) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
