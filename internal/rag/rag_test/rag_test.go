package rag_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"manualqa/internal/domain/docModel"
	"manualqa/internal/rag"
	"manualqa/internal/rag/search"
)

func hits(n int) []search.Result {
	results := make([]search.Result, n)
	for i := range results {
		results[i] = search.Result{
			Content:     fmt.Sprintf("결과 %d 내용입니다", i),
			PageNumber:  i + 1,
			ChunkID:     fmt.Sprintf("chunk_%d", i),
			SectionType: docModel.SectionGeneral,
			Score:       1 - float64(i)*0.1,
			ScoreSpace:  search.ScoreSpaceHybrid,
		}
	}
	return results
}

func TestQueryHappyPath(t *testing.T) {
	store := &mockStore{
		HybridSearchFunc: func(ctx context.Context, queryText string, queryEmbedding []float32, k int) ([]search.Result, error) {
			return hits(3), nil
		},
	}
	svc := rag.NewService(&mockEmbedder{}, store, &mockProvider{})

	result := svc.Query(context.Background(), "브레이크 경고등이 켜지면?", "hybrid", 5)

	if result.Err != "" {
		t.Fatalf("Err = %q", result.Err)
	}
	if result.ResultsCount != 3 || len(result.Sources) != 3 {
		t.Errorf("counts = %d / %d sources", result.ResultsCount, len(result.Sources))
	}
	if result.Confidence != 0.6 {
		t.Errorf("Confidence = %v, want 0.6", result.Confidence)
	}
	if !strings.Contains(result.Answer, "페이지") {
		t.Errorf("Answer = %q", result.Answer)
	}
	if result.SearchType != "hybrid" {
		t.Errorf("SearchType = %q", result.SearchType)
	}
}

func TestQueryNoResults(t *testing.T) {
	svc := rag.NewService(&mockEmbedder{}, &mockStore{}, &mockProvider{
		CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
			t.Error("llm called with no retrieval results")
			return "", nil
		},
	})

	result := svc.Query(context.Background(), "존재하지 않는 내용", "vector", 5)

	if result.Answer != "관련 정보를 찾을 수 없습니다." {
		t.Errorf("Answer = %q", result.Answer)
	}
	if result.Err != "" || result.Confidence != 0 || result.ResultsCount != 0 {
		t.Errorf("result = %+v", result)
	}
}

func TestQueryUnsupportedSearchType(t *testing.T) {
	svc := rag.NewService(&mockEmbedder{}, &mockStore{}, &mockProvider{})

	result := svc.Query(context.Background(), "질문", "semantic", 5)

	if result.Answer != "관련 정보를 찾을 수 없습니다." {
		t.Errorf("Answer = %q", result.Answer)
	}
	if !strings.Contains(result.Err, "지원하지 않는 검색 타입") {
		t.Errorf("Err = %q", result.Err)
	}
}

func TestQueryEmbeddingFailureIsAbsorbed(t *testing.T) {
	embedder := &mockEmbedder{
		GetEmbeddingFunc: func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("model down")
		},
	}
	svc := rag.NewService(embedder, &mockStore{}, &mockProvider{})

	result := svc.Query(context.Background(), "질문", "hybrid", 5)

	if result.Answer != "관련 정보를 찾을 수 없습니다." {
		t.Errorf("Answer = %q", result.Answer)
	}
	if result.Err != "" {
		t.Errorf("embedding failure leaked into Err: %q", result.Err)
	}
}

func TestQuerySearchFailureIsAbsorbed(t *testing.T) {
	store := &mockStore{
		HybridSearchFunc: func(ctx context.Context, queryText string, queryEmbedding []float32, k int) ([]search.Result, error) {
			return nil, errors.New("cluster unreachable")
		},
	}
	svc := rag.NewService(&mockEmbedder{}, store, &mockProvider{})

	result := svc.Query(context.Background(), "질문", "hybrid", 5)

	if !strings.HasPrefix(result.Answer, "오류가 발생했습니다") {
		t.Errorf("Answer = %q", result.Answer)
	}
	if !strings.Contains(result.Err, "cluster unreachable") {
		t.Errorf("Err = %q", result.Err)
	}
	if result.SearchTime != 0 {
		t.Errorf("failed query reported search time %v", result.SearchTime)
	}
	if len(result.Sources) != 0 {
		t.Errorf("failed query carried sources: %v", result.Sources)
	}
}

func TestQueryLLMFailureIsAbsorbed(t *testing.T) {
	store := &mockStore{
		HybridSearchFunc: func(ctx context.Context, queryText string, queryEmbedding []float32, k int) ([]search.Result, error) {
			return hits(5), nil
		},
	}
	provider := &mockProvider{
		CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("quota exceeded")
		},
	}
	svc := rag.NewService(&mockEmbedder{}, store, provider)

	result := svc.Query(context.Background(), "질문", "hybrid", 5)

	if !strings.HasPrefix(result.Answer, "답변 생성 중 오류가 발생했습니다") {
		t.Errorf("Answer = %q", result.Answer)
	}
	//retrieval still succeeded, sources must survive the llm failure
	if result.ResultsCount != 5 || result.Confidence != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestQueryContextFitsWholeResultsOnly(t *testing.T) {
	big := strings.Repeat("가", 2100)
	results := []search.Result{
		{Content: big, PageNumber: 1},
		{Content: big, PageNumber: 2},
		{Content: big, PageNumber: 3},
	}

	var prompt string
	store := &mockStore{
		HybridSearchFunc: func(ctx context.Context, queryText string, queryEmbedding []float32, k int) ([]search.Result, error) {
			return results, nil
		},
	}
	provider := &mockProvider{
		CompleteFunc: func(ctx context.Context, p string) (string, error) {
			prompt = p
			return "답변", nil
		},
	}
	svc := rag.NewService(&mockEmbedder{}, store, provider)

	result := svc.Query(context.Background(), "질문", "hybrid", 3)
	if result.Err != "" {
		t.Fatalf("Err = %q", result.Err)
	}

	//each block is ~2100 characters, only the first fits under the 4000-char cap
	if !strings.Contains(prompt, "[페이지 1]") {
		t.Error("prompt missing first result")
	}
	if strings.Contains(prompt, "[페이지 2]") || strings.Contains(prompt, "[페이지 3]") {
		t.Error("context cap admitted a result it should have skipped")
	}
}

func TestQueryDefaults(t *testing.T) {
	var gotK int
	var hybridUsed bool
	store := &mockStore{
		HybridSearchFunc: func(ctx context.Context, queryText string, queryEmbedding []float32, k int) ([]search.Result, error) {
			gotK = k
			hybridUsed = true
			return hits(1), nil
		},
	}
	svc := rag.NewService(&mockEmbedder{}, store, &mockProvider{})

	result := svc.Query(context.Background(), "질문", "", 0)

	if !hybridUsed {
		t.Error("empty search type did not default to hybrid")
	}
	if gotK != 5 {
		t.Errorf("k = %d, want 5", gotK)
	}
	if result.SearchType != "hybrid" {
		t.Errorf("SearchType = %q", result.SearchType)
	}
}

func TestQuerySourcePreviewTruncation(t *testing.T) {
	long := strings.Repeat("나", 300)
	store := &mockStore{
		HybridSearchFunc: func(ctx context.Context, queryText string, queryEmbedding []float32, k int) ([]search.Result, error) {
			return []search.Result{{Content: long, PageNumber: 7, Score: 0.9}}, nil
		},
	}
	svc := rag.NewService(&mockEmbedder{}, store, &mockProvider{})

	result := svc.Query(context.Background(), "질문", "hybrid", 5)
	if len(result.Sources) != 1 {
		t.Fatalf("sources = %d", len(result.Sources))
	}

	preview := result.Sources[0].Content
	if !strings.HasSuffix(preview, "...") {
		t.Errorf("preview not truncated: %d runes", len([]rune(preview)))
	}
	if got := len([]rune(preview)); got != 203 {
		t.Errorf("preview length = %d runes, want 203", got)
	}
}

func TestStatus(t *testing.T) {
	store := &mockStore{
		GetIndexStatsFunc: func(ctx context.Context) (search.IndexStats, error) {
			return search.IndexStats{DocumentCount: 42, IndexSize: 1 << 20, Status: "yellow", Healthy: true}, nil
		},
	}
	svc := rag.NewService(&mockEmbedder{}, store, &mockProvider{})

	status := svc.Status(context.Background())
	if !status.SearchHealthy || !status.EmbeddingHealthy {
		t.Errorf("status = %+v", status)
	}
	if status.DocumentCount != 42 || status.ClusterStatus != "yellow" {
		t.Errorf("status = %+v", status)
	}
}

func TestSetupFailsWhenEmbeddingUnreachable(t *testing.T) {
	embedder := &mockEmbedder{
		TestConnectionFunc: func(ctx context.Context) bool { return false },
	}
	svc := rag.NewService(embedder, &mockStore{}, &mockProvider{})

	if err := svc.Setup(context.Background()); err == nil {
		t.Fatal("Setup succeeded with an unreachable embedding backend")
	}
}

func TestResetRecreatesIndex(t *testing.T) {
	var calls []string
	store := &mockStore{
		DeleteIndexFunc: func(ctx context.Context) error {
			calls = append(calls, "delete")
			return nil
		},
		CreateIndexFunc: func(ctx context.Context) error {
			calls = append(calls, "create")
			return nil
		},
	}
	svc := rag.NewService(&mockEmbedder{}, store, &mockProvider{})

	if err := svc.Reset(context.Background()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(calls) != 2 || calls[0] != "delete" || calls[1] != "create" {
		t.Errorf("calls = %v", calls)
	}
}
