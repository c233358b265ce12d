package ingest

import (
	"context"
	"fmt"
	"os"
	"time"

	"manualqa/internal/config"
	"manualqa/internal/domain/docModel"
	"manualqa/internal/domain/jobModel"
	"manualqa/internal/metrics"
	"manualqa/internal/rag/chunker"
	"manualqa/internal/rag/embedding"
	"manualqa/internal/rag/search"
	"manualqa/pkg/logger_i"
)

// Pipeline runs one document from uploaded file to indexed chunks.
type Pipeline struct {
	chunker  *chunker.Chunker
	embedder embedding.Embedder
	store    search.DocumentStore
	logger   *logger_i.Logger
}

func NewPipeline(c *chunker.Chunker, embedder embedding.Embedder, store search.DocumentStore) *Pipeline {
	return &Pipeline{
		chunker:  c,
		embedder: embedder,
		store:    store,
		logger:   logger_i.NewLogger("Ingest"),
	}
}

// ProcessDocumentIngestion drives the full ingestion for one job, updating
// the job's step as it moves through the stages. The uploaded temp file is
// removed on the way out regardless of outcome.
func (p *Pipeline) ProcessDocumentIngestion(ctx context.Context, job *jobModel.Job, saveStep func(jobModel.InternalStatus)) error {
	filePath := job.JobPayload.IngestURL
	defer os.Remove(filePath)

	start := time.Now()
	p.logger.Info("ingestion started", "jobId", job.Id, "file", job.JobPayload.IngestFileName)

	saveStep(jobModel.IngestExtract)
	doc, err := extractDocument(filePath, job.JobPayload.IngestFileName)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	run := docModel.RunContext{
		SourceFile: job.JobPayload.IngestFileName,
		Timestamp:  start,
		Metadata:   doc.Metadata,
	}

	saveStep(jobModel.IngestChunking)
	chunks := p.chunker.BuildChunks(doc, run)
	if len(chunks) == 0 {
		return fmt.Errorf("no text content in %s", job.JobPayload.IngestFileName)
	}
	job.JobPayload.ChunkCount = len(chunks)

	saveStep(jobModel.IngestEmbedding)
	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}
	embeddings := p.embedder.BatchEmbedding(ctx, texts, config.EmbeddingBatchSize)

	saveStep(jobModel.IngestIndexing)
	if err := p.store.CreateIndex(ctx); err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	if err := p.store.AddDocuments(ctx, chunks, embeddings); err != nil {
		return fmt.Errorf("index documents: %w", err)
	}
	job.JobPayload.IndexedCount = len(chunks)

	metrics.CaptureJobMetrics("ingest", time.Since(start))
	p.logger.Info("ingestion complete", "jobId", job.Id, "chunks", len(chunks), "elapsed", time.Since(start))
	return nil
}
