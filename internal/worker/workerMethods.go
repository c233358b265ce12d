package worker

import (
	"context"
	"fmt"
	"time"

	"manualqa/internal/config"
	"manualqa/internal/domain/jobModel"
	"manualqa/internal/metrics"
)

func (p *Pool) workerLoop(ctx context.Context) {
	defer func() {
		p.activeWorkers.Add(-1)
		metrics.DecrementActiveWorkerCount()
	}()

	idle := time.NewTimer(config.IdleWorkerTimeout)
	defer idle.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case queuedJob := <-p.jobs.JobQueue:
			p.executeJob(ctx, queuedJob)
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(config.IdleWorkerTimeout)
		case <-idle.C:
			//the baseline worker stays, extras retire
			if p.activeWorkers.Load() > config.MinWorkerCount {
				p.logger.Debug("idle worker retiring")
				return
			}
			idle.Reset(config.IdleWorkerTimeout)
		}
	}
}

func (p *Pool) executeJob(ctx context.Context, queuedJob jobModel.Job) {
	defer metrics.DecrementJobsInQueue()

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("job panicked", "jobId", queuedJob.Id, "panic", r)
			p.failJob(ctx, &queuedJob, fmt.Errorf("%v", r))
		}
	}()

	queuedJob.Status = jobModel.JobStatusRunning
	p.saveJob(ctx, &queuedJob)

	err := p.pipeline.ProcessDocumentIngestion(ctx, &queuedJob, func(step jobModel.InternalStatus) {
		queuedJob.CurrentStep = step
		p.saveJob(ctx, &queuedJob)
	})
	if err != nil {
		p.logger.Error("job failed", "jobId", queuedJob.Id, "error", err)
		p.failJob(ctx, &queuedJob, err)
		return
	}

	queuedJob.Status = jobModel.JobStatusComplete
	queuedJob.CurrentStep = jobModel.Complete
	queuedJob.EndTime = time.Now()
	p.saveJob(ctx, &queuedJob)
	p.logger.Info("job complete", "jobId", queuedJob.Id)
}

func (p *Pool) failJob(ctx context.Context, queuedJob *jobModel.Job, err error) {
	queuedJob.Status = jobModel.JobStatusError
	queuedJob.CurrentStep = jobModel.Error
	queuedJob.EndTime = time.Now()
	queuedJob.Error = jobModel.JobError{
		Code:    500,
		Message: err.Error(),
	}
	p.saveJob(ctx, queuedJob)
}

func (p *Pool) saveJob(ctx context.Context, queuedJob *jobModel.Job) {
	if err := p.jobs.Store.SaveJob(ctx, *queuedJob); err != nil {
		p.logger.Error("job save failed", "jobId", queuedJob.Id, "error", err)
	}
}
