package openSearchDB

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"manualqa/internal/config"
	"manualqa/internal/rag/search"
)

// Search runs pure knn retrieval. Filters restrict candidates by exact
// field value: a scalar becomes a term clause, a list becomes terms.
func (s *Store) Search(ctx context.Context, queryEmbedding []float32, k int, filters map[string]any) ([]search.Result, error) {
	knn := map[string]any{
		"knn": map[string]any{
			"embedding": map[string]any{
				"vector": queryEmbedding,
				"k":      k,
			},
		},
	}

	var query map[string]any
	if len(filters) == 0 {
		query = knn
	} else {
		filterClauses := make([]map[string]any, 0, len(filters))
		for field, value := range filters {
			switch v := value.(type) {
			case []any:
				filterClauses = append(filterClauses, map[string]any{
					"terms": map[string]any{field: v},
				})
			case []string:
				filterClauses = append(filterClauses, map[string]any{
					"terms": map[string]any{field: v},
				})
			default:
				filterClauses = append(filterClauses, map[string]any{
					"term": map[string]any{field: v},
				})
			}
		}
		query = map[string]any{
			"bool": map[string]any{
				"must":   []map[string]any{knn},
				"filter": filterClauses,
			},
		}
	}

	return s.runSearch(ctx, query, k, search.ScoreSpaceVector)
}

// HybridSearch fuses knn and lexical relevance in one weighted bool query.
// Content text is double-weighted over image descriptions on the lexical
// side.
func (s *Store) HybridSearch(ctx context.Context, queryText string, queryEmbedding []float32, k int) ([]search.Result, error) {
	query := map[string]any{
		"bool": map[string]any{
			"should": []map[string]any{
				{
					"knn": map[string]any{
						"embedding": map[string]any{
							"vector": queryEmbedding,
							"k":      k,
							"boost":  config.HybridAlpha,
						},
					},
				},
				{
					"multi_match": map[string]any{
						"query":  queryText,
						"fields": []string{"content^2", "image_descriptions"},
						"boost":  1 - config.HybridAlpha,
					},
				},
			},
		},
	}

	return s.runSearch(ctx, query, k, search.ScoreSpaceHybrid)
}

func (s *Store) runSearch(ctx context.Context, query map[string]any, k int, scoreSpace string) ([]search.Result, error) {
	body := map[string]any{
		"size":  k,
		"query": query,
		//vectors are heavy and callers never need them back
		"_source": map[string]any{
			"excludes": []string{"embedding"},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search request: %s", res.String())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Score  float64         `json:"_score"`
				Source indexedDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := make([]search.Result, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		results = append(results, search.Result{
			Content:           hit.Source.Content,
			Metadata:          hit.Source.Metadata,
			PageNumber:        hit.Source.PageNumber,
			ChunkID:           hit.Source.ChunkID,
			SectionType:       hit.Source.SectionType,
			HasImages:         hit.Source.HasImages,
			ImageDescriptions: hit.Source.ImageDescriptions,
			Score:             hit.Score,
			ScoreSpace:        scoreSpace,
		})
	}

	s.logger.Debug("search complete", "hits", len(results), "space", scoreSpace)
	return results, nil
}
