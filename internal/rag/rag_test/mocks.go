package rag_test

import (
	"context"

	"manualqa/internal/domain/docModel"
	"manualqa/internal/rag/search"
)

// function-field mocks: each test overrides exactly what it cares about

type mockEmbedder struct {
	GetEmbeddingFunc   func(ctx context.Context, text string) ([]float32, error)
	TestConnectionFunc func(ctx context.Context) bool
}

func (m *mockEmbedder) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	if m.GetEmbeddingFunc != nil {
		return m.GetEmbeddingFunc(ctx, text)
	}
	return []float32{0.1, 0.2}, nil
}

func (m *mockEmbedder) BatchEmbedding(ctx context.Context, texts []string, batchSize int) [][]float32 {
	vectors := make([][]float32, len(texts))
	for i := range vectors {
		vectors[i] = []float32{0.1, 0.2}
	}
	return vectors
}

func (m *mockEmbedder) TestConnection(ctx context.Context) bool {
	if m.TestConnectionFunc != nil {
		return m.TestConnectionFunc(ctx)
	}
	return true
}

type mockStore struct {
	SearchFunc        func(ctx context.Context, queryEmbedding []float32, k int, filters map[string]any) ([]search.Result, error)
	HybridSearchFunc  func(ctx context.Context, queryText string, queryEmbedding []float32, k int) ([]search.Result, error)
	CreateIndexFunc   func(ctx context.Context) error
	DeleteIndexFunc   func(ctx context.Context) error
	GetIndexStatsFunc func(ctx context.Context) (search.IndexStats, error)
}

func (m *mockStore) CreateIndex(ctx context.Context) error {
	if m.CreateIndexFunc != nil {
		return m.CreateIndexFunc(ctx)
	}
	return nil
}

func (m *mockStore) DeleteIndex(ctx context.Context) error {
	if m.DeleteIndexFunc != nil {
		return m.DeleteIndexFunc(ctx)
	}
	return nil
}

func (m *mockStore) AddDocuments(ctx context.Context, chunks []docModel.Chunk, embeddings [][]float32) error {
	return nil
}

func (m *mockStore) Search(ctx context.Context, queryEmbedding []float32, k int, filters map[string]any) ([]search.Result, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, queryEmbedding, k, filters)
	}
	return nil, nil
}

func (m *mockStore) HybridSearch(ctx context.Context, queryText string, queryEmbedding []float32, k int) ([]search.Result, error) {
	if m.HybridSearchFunc != nil {
		return m.HybridSearchFunc(ctx, queryText, queryEmbedding, k)
	}
	return nil, nil
}

func (m *mockStore) GetIndexStats(ctx context.Context) (search.IndexStats, error) {
	if m.GetIndexStatsFunc != nil {
		return m.GetIndexStatsFunc(ctx)
	}
	return search.IndexStats{}, nil
}

type mockProvider struct {
	CompleteFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt)
	}
	return "브레이크 경고등은 제동 장치 이상을 의미합니다. (페이지 3)", nil
}
