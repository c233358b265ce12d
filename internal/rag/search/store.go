package search

import (
	"context"

	"manualqa/internal/domain/docModel"
)

// ScoreSpace tags a result with the scoring regime that produced it.
// Scores from different spaces are not comparable.
const (
	ScoreSpaceVector = "vector"
	ScoreSpaceHybrid = "hybrid"
)

// Result is one retrieved chunk with its relevance score.
type Result struct {
	Content           string               `json:"content"`
	Metadata          map[string]any       `json:"metadata"`
	PageNumber        int                  `json:"page_number"`
	ChunkID           string               `json:"chunk_id"`
	SectionType       docModel.SectionType `json:"section_type"`
	HasImages         bool                 `json:"has_images"`
	ImageDescriptions []string             `json:"image_descriptions"`
	Score             float64              `json:"score"`
	ScoreSpace        string               `json:"score_space"`
}

// IndexStats is a point-in-time snapshot of the index.
type IndexStats struct {
	DocumentCount int64  `json:"document_count"`
	IndexSize     int64  `json:"index_size"`
	Status        string `json:"status"`
	Healthy       bool   `json:"healthy"`
}

// DocumentStore is the retrieval backend contract.
type DocumentStore interface {
	CreateIndex(ctx context.Context) error
	DeleteIndex(ctx context.Context) error
	AddDocuments(ctx context.Context, chunks []docModel.Chunk, embeddings [][]float32) error
	Search(ctx context.Context, queryEmbedding []float32, k int, filters map[string]any) ([]Result, error)
	HybridSearch(ctx context.Context, queryText string, queryEmbedding []float32, k int) ([]Result, error)
	GetIndexStats(ctx context.Context) (IndexStats, error)
}
