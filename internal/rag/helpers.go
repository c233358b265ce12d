package rag

import (
	"context"
	"fmt"
	"time"

	"manualqa/internal/config"
	"manualqa/internal/metrics"
	"manualqa/internal/rag/search"
)

type unsupportedSearchType string

func (u unsupportedSearchType) Error() string {
	return fmt.Sprintf("지원하지 않는 검색 타입: %s", string(u))
}

func (s *service) embedQuestion(ctx context.Context, question string) ([]float32, error) {
	defer func(start time.Time) {
		metrics.CaptureExecutionMetrics("embedding", time.Since(start))
	}(time.Now())

	return s.embedder.GetEmbedding(ctx, question)
}

func (s *service) runSearch(ctx context.Context, searchType string, question string, queryEmbedding []float32, k int) ([]search.Result, error) {
	defer func(start time.Time) {
		metrics.CaptureExecutionMetrics("search", time.Since(start))
	}(time.Now())

	switch searchType {
	case SearchTypeVector:
		return s.store.Search(ctx, queryEmbedding, k, nil)
	case SearchTypeHybrid:
		return s.store.HybridSearch(ctx, question, queryEmbedding, k)
	default:
		return nil, unsupportedSearchType(searchType)
	}
}

// generateAnswer absorbs model failures: the caller always gets displayable
// text.
func (s *service) generateAnswer(ctx context.Context, question string, results []search.Result) string {
	defer func(start time.Time) {
		metrics.CaptureExecutionMetrics("llm", time.Since(start))
	}(time.Now())

	prompt := buildPrompt(question, buildContext(results))
	answer, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("answer generation failed", "error", err)
		return fmt.Sprintf("답변 생성 중 오류가 발생했습니다: %v", err)
	}
	return answer
}

// confidence is a coarse signal from result volume alone, full at
// DefaultSearchK results. Not a calibrated probability.
func confidence(resultsCount int) float64 {
	c := float64(resultsCount) / float64(config.DefaultSearchK)
	if c > 1 {
		return 1
	}
	return c
}

func buildSources(results []search.Result) []Source {
	sources := make([]Source, 0, len(results))
	for _, r := range results {
		content := r.Content
		//rune-wise so korean text is never cut mid-character
		if runes := []rune(content); len(runes) > config.SourcePreviewLen {
			content = string(runes[:config.SourcePreviewLen]) + "..."
		}
		sources = append(sources, Source{
			Content:     content,
			PageNumber:  r.PageNumber,
			Score:       r.Score,
			ScoreSpace:  r.ScoreSpace,
			SectionType: r.SectionType,
			HasImages:   r.HasImages,
		})
	}
	return sources
}
