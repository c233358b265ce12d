package rag

import (
	"context"
	"fmt"
	"time"

	"manualqa/internal/config"
	"manualqa/internal/domain/docModel"
	"manualqa/internal/metrics"
	"manualqa/internal/rag/embedding"
	"manualqa/internal/rag/llm"
	"manualqa/internal/rag/search"
	"manualqa/pkg/logger_i"
)

const (
	SearchTypeVector = "vector"
	SearchTypeHybrid = "hybrid"
)

// QueryResult is the complete outcome of one question. Failures are data:
// the orchestrator absorbs every collaborator error into the result instead
// of raising it.
type QueryResult struct {
	Question     string   `json:"question"`
	Answer       string   `json:"answer"`
	Sources      []Source `json:"sources"`
	SearchTime   float64  `json:"search_time"`
	SearchType   string   `json:"search_type"`
	ResultsCount int      `json:"results_count"`
	Confidence   float64  `json:"confidence"`
	Err          string   `json:"error,omitempty"`
}

// Source is a truncated citation back to the manual.
type Source struct {
	Content     string               `json:"content"`
	PageNumber  int                  `json:"page_number"`
	Score       float64              `json:"score"`
	ScoreSpace  string               `json:"score_space"`
	SectionType docModel.SectionType `json:"section_type"`
	HasImages   bool                 `json:"has_images"`
}

type SystemStatus struct {
	SearchHealthy    bool      `json:"search_healthy"`
	EmbeddingHealthy bool      `json:"embedding_healthy"`
	DocumentCount    int64     `json:"document_count"`
	IndexSize        int64     `json:"index_size"`
	ClusterStatus    string    `json:"cluster_status"`
	Timestamp        time.Time `json:"timestamp"`
}

type Service interface {
	Query(ctx context.Context, question string, searchType string, k int) QueryResult
	Setup(ctx context.Context) error
	Reset(ctx context.Context) error
	Status(ctx context.Context) SystemStatus
}

type service struct {
	embedder embedding.Embedder
	store    search.DocumentStore
	provider llm.Provider
	logger   *logger_i.Logger
}

func NewService(embedder embedding.Embedder, store search.DocumentStore, provider llm.Provider) Service {
	return &service{
		embedder: embedder,
		store:    store,
		provider: provider,
		logger:   logger_i.NewLogger("RagService"),
	}
}

// Query answers one question end to end. It never returns an error and
// never panics outward: whatever goes wrong becomes a well-formed result
// with a Korean surface message.
func (s *service) Query(ctx context.Context, question string, searchType string, k int) (result QueryResult) {
	start := time.Now()

	if searchType == "" {
		searchType = SearchTypeHybrid
	}
	if k <= 0 {
		k = config.DefaultSearchK
	}

	result = QueryResult{
		Question:   question,
		SearchType: searchType,
		Sources:    []Source{},
	}

	failed := false
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("query panicked", "question", question, "panic", r)
			result.Answer = fmt.Sprintf("오류가 발생했습니다: %v", r)
			result.Err = fmt.Sprintf("%v", r)
			result.Sources = []Source{}
			failed = true
		}
		//failures report zero search time, everything else the wall clock
		if !failed {
			result.SearchTime = time.Since(start).Seconds()
		}
		metrics.CaptureJobMetrics("query", time.Since(start))
	}()

	queryEmbedding, err := s.embedQuestion(ctx, question)
	if err != nil || len(queryEmbedding) == 0 {
		s.logger.Error("question embedding failed", "error", err)
		result.Answer = NoResultsAnswer
		return result
	}

	results, err := s.runSearch(ctx, searchType, question, queryEmbedding, k)
	if err != nil {
		if _, ok := err.(unsupportedSearchType); ok {
			result.Answer = NoResultsAnswer
			result.Err = err.Error()
			return result
		}
		s.logger.Error("search failed", "error", err)
		result.Answer = fmt.Sprintf("오류가 발생했습니다: %v", err)
		result.Err = err.Error()
		failed = true
		return result
	}

	result.ResultsCount = len(results)
	result.Confidence = confidence(len(results))
	result.Sources = buildSources(results)

	if len(results) == 0 {
		result.Answer = NoResultsAnswer
		return result
	}

	result.Answer = s.generateAnswer(ctx, question, results)
	return result
}

// Setup makes the system ready to ingest: index present, collaborators
// reachable.
func (s *service) Setup(ctx context.Context) error {
	if !s.embedder.TestConnection(ctx) {
		return fmt.Errorf("embedding backend unreachable")
	}
	if err := s.store.CreateIndex(ctx); err != nil {
		return fmt.Errorf("index setup: %w", err)
	}
	s.logger.Info("system setup complete")
	return nil
}

// Reset drops and recreates the index, discarding every indexed document.
func (s *service) Reset(ctx context.Context) error {
	if err := s.store.DeleteIndex(ctx); err != nil {
		return fmt.Errorf("index reset: %w", err)
	}
	if err := s.store.CreateIndex(ctx); err != nil {
		return fmt.Errorf("index recreate: %w", err)
	}
	s.logger.Info("system reset complete")
	return nil
}

func (s *service) Status(ctx context.Context) SystemStatus {
	status := SystemStatus{
		EmbeddingHealthy: s.embedder.TestConnection(ctx),
		ClusterStatus:    "unknown",
		Timestamp:        time.Now(),
	}

	stats, err := s.store.GetIndexStats(ctx)
	if err != nil {
		s.logger.Error("index stats failed", "error", err)
		return status
	}

	status.SearchHealthy = stats.Healthy
	status.DocumentCount = stats.DocumentCount
	status.IndexSize = stats.IndexSize
	status.ClusterStatus = stats.Status
	return status
}
