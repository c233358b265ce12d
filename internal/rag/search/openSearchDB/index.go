package openSearchDB

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"manualqa/internal/config"
	"manualqa/internal/rag/search"
)

// CreateIndex creates the chunk index with its knn mapping. Idempotent: an
// index that already exists is success, whether detected up front or lost
// to a concurrent creator.
func (s *Store) CreateIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(
		[]string{s.index},
		s.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index existence check: %w", err)
	}
	defer exists.Body.Close()

	if exists.StatusCode == 200 {
		s.logger.Info("index already exists", "index", s.index)
		return nil
	}

	body := map[string]any{
		"settings": map[string]any{
			"index": map[string]any{
				"knn":                      true,
				"knn.algo_param.ef_search": 100,
			},
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"content": map[string]any{
					"type":     "text",
					"analyzer": "standard",
				},
				"embedding": map[string]any{
					"type":      "knn_vector",
					"dimension": config.EmbeddingOutputDimensionality,
					"method": map[string]any{
						"name":       "hnsw",
						"space_type": "cosinesimil",
						"engine":     "nmslib",
						"parameters": map[string]any{
							"ef_construction": 128,
							"m":               24,
						},
					},
				},
				"metadata":           map[string]any{"type": "object"},
				"page_number":        map[string]any{"type": "integer"},
				"chunk_id":           map[string]any{"type": "keyword"},
				"section_type":       map[string]any{"type": "keyword"},
				"has_images":         map[string]any{"type": "boolean"},
				"image_descriptions": map[string]any{"type": "text"},
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return fmt.Errorf("encode index body: %w", err)
	}

	res, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(&buf),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg := res.String()
		//lost a create race - the index is there, which is what we wanted
		if strings.Contains(msg, "resource_already_exists_exception") {
			s.logger.Info("index created concurrently", "index", s.index)
			return nil
		}
		return fmt.Errorf("create index: %s", msg)
	}

	s.logger.Info("index created", "index", s.index)
	return nil
}

// DeleteIndex drops the index. Deleting a missing index is success.
func (s *Store) DeleteIndex(ctx context.Context) error {
	res, err := s.client.Indices.Delete(
		[]string{s.index},
		s.client.Indices.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete index: %s", res.String())
	}

	s.logger.Info("index deleted", "index", s.index)
	return nil
}

// GetIndexStats reports document count, on-disk size and cluster health.
// Healthy means the cluster answers green or yellow.
func (s *Store) GetIndexStats(ctx context.Context) (search.IndexStats, error) {
	stats := search.IndexStats{Status: "unknown"}

	countRes, err := s.client.Count(
		s.client.Count.WithIndex(s.index),
		s.client.Count.WithContext(ctx),
	)
	if err != nil {
		return stats, fmt.Errorf("count: %w", err)
	}
	defer countRes.Body.Close()

	if !countRes.IsError() {
		var count struct {
			Count int64 `json:"count"`
		}
		if err := json.NewDecoder(countRes.Body).Decode(&count); err == nil {
			stats.DocumentCount = count.Count
		}
	}

	statsRes, err := s.client.Indices.Stats(
		s.client.Indices.Stats.WithIndex(s.index),
		s.client.Indices.Stats.WithContext(ctx),
	)
	if err != nil {
		return stats, fmt.Errorf("index stats: %w", err)
	}
	defer statsRes.Body.Close()

	if !statsRes.IsError() {
		var parsed struct {
			All struct {
				Total struct {
					Store struct {
						SizeInBytes int64 `json:"size_in_bytes"`
					} `json:"store"`
				} `json:"total"`
			} `json:"_all"`
		}
		if err := json.NewDecoder(statsRes.Body).Decode(&parsed); err == nil {
			stats.IndexSize = parsed.All.Total.Store.SizeInBytes
		}
	}

	healthRes, err := s.client.Cluster.Health(
		s.client.Cluster.Health.WithContext(ctx),
	)
	if err != nil {
		return stats, fmt.Errorf("cluster health: %w", err)
	}
	defer healthRes.Body.Close()

	if !healthRes.IsError() {
		var health struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(healthRes.Body).Decode(&health); err == nil {
			stats.Status = health.Status
			stats.Healthy = health.Status == "green" || health.Status == "yellow"
		}
	}

	return stats, nil
}
