package worker

import (
	"context"
	"sync/atomic"

	"manualqa/internal/config"
	"manualqa/internal/job"
	"manualqa/internal/metrics"
	"manualqa/internal/rag/ingest"
	"manualqa/pkg/logger_i"
)

// Pool scales ingestion workers with demand. One worker always runs; the
// dispatcher adds more as queued requests accumulate, idle workers retire.
type Pool struct {
	jobs     *job.JobService
	pipeline *ingest.Pipeline
	logger   *logger_i.Logger

	activeWorkers atomic.Int64
}

func NewPool(jobs *job.JobService, pipeline *ingest.Pipeline) *Pool {
	return &Pool{
		jobs:     jobs,
		pipeline: pipeline,
		logger:   logger_i.NewLogger("WorkerPool"),
	}
}

// Start launches the baseline worker and the dispatcher loop. Returns
// immediately; workers stop when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	p.spawnWorker(ctx)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-p.jobs.Dispatcher:
				p.scaleUp(ctx)
			}
		}
	}()
}

func (p *Pool) scaleUp(ctx context.Context) {
	active := p.activeWorkers.Load()
	wanted := p.jobs.RequestCount()/config.RequestsPerNewWorkerCount + config.MinWorkerCount

	if wanted > config.MaxWorkerCount {
		wanted = config.MaxWorkerCount
	}
	if active >= wanted {
		return
	}

	p.logger.Debug("scaling workers", "active", active, "wanted", wanted)
	for i := active; i < wanted; i++ {
		p.spawnWorker(ctx)
	}
}

func (p *Pool) spawnWorker(ctx context.Context) {
	p.activeWorkers.Add(1)
	metrics.IncrementActiveWorkerCount()
	go p.workerLoop(ctx)
}
