package openSearchDB

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"manualqa/internal/config"
	"manualqa/internal/domain/docModel"
)

type indexedDocument struct {
	Content           string               `json:"content"`
	Embedding         []float32            `json:"embedding"`
	Metadata          map[string]any       `json:"metadata"`
	PageNumber        int                  `json:"page_number"`
	ChunkID           string               `json:"chunk_id"`
	SectionType       docModel.SectionType `json:"section_type"`
	HasImages         bool                 `json:"has_images"`
	ImageDescriptions []string             `json:"image_descriptions"`
}

// AddDocuments bulk-indexes chunk/embedding pairs. The chunk id is the
// external document id, so re-indexing the same content overwrites in
// place. Succeeds if at least one document lands; individual rejections
// are logged, a fully failed batch is an error.
func (s *Store) AddDocuments(ctx context.Context, chunks []docModel.Chunk, embeddings [][]float32) error {
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("chunk/embedding count mismatch: %d vs %d", len(chunks), len(embeddings))
	}
	if len(chunks) == 0 {
		return nil
	}

	indexed := 0
	for start := 0; start < len(chunks); start += config.IndexBatchSize {
		end := start + config.IndexBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		n, err := s.bulkIndex(ctx, chunks[start:end], embeddings[start:end])
		if err != nil {
			return err
		}
		indexed += n
	}

	//make documents searchable before the caller reports success
	refresh, err := s.client.Indices.Refresh(
		s.client.Indices.Refresh.WithIndex(s.index),
		s.client.Indices.Refresh.WithContext(ctx),
	)
	if err == nil {
		refresh.Body.Close()
	}

	if indexed == 0 {
		return fmt.Errorf("no documents indexed out of %d", len(chunks))
	}

	s.logger.Info("documents indexed", "indexed", indexed, "total", len(chunks))
	return nil
}

func (s *Store) bulkIndex(ctx context.Context, chunks []docModel.Chunk, embeddings [][]float32) (int, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)

	for i, chunk := range chunks {
		action := map[string]any{
			"index": map[string]any{
				"_index": s.index,
				"_id":    chunk.ChunkID,
			},
		}
		if err := encoder.Encode(action); err != nil {
			return 0, fmt.Errorf("encode bulk action: %w", err)
		}

		doc := indexedDocument{
			Content:           chunk.Content,
			Embedding:         embeddings[i],
			Metadata:          chunk.Metadata,
			PageNumber:        chunk.PageNumber,
			ChunkID:           chunk.ChunkID,
			SectionType:       chunk.SectionType,
			HasImages:         chunk.HasImages,
			ImageDescriptions: chunk.ImageDescriptions,
		}
		if err := encoder.Encode(doc); err != nil {
			return 0, fmt.Errorf("encode bulk document: %w", err)
		}
	}

	res, err := s.client.Bulk(
		&buf,
		s.client.Bulk.WithIndex(s.index),
		s.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		return 0, fmt.Errorf("bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, fmt.Errorf("bulk request: %s", res.String())
	}

	var parsed struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			ID     string          `json:"_id"`
			Status int             `json:"status"`
			Error  json.RawMessage `json:"error"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("decode bulk response: %w", err)
	}

	indexed := 0
	for _, item := range parsed.Items {
		for _, result := range item {
			if result.Status < 300 {
				indexed++
			} else {
				s.logger.Warn("document rejected", "id", result.ID, "status", result.Status, "error", string(result.Error))
			}
		}
	}
	return indexed, nil
}
