package job

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"manualqa/internal/config"
	"manualqa/internal/domain/jobModel"
	"manualqa/internal/metrics"
	"manualqa/pkg/logger_i"
)

// JobService owns the ingestion queue. Handlers enqueue, the worker pool
// drains, the dispatcher channel signals demand.
type JobService struct {
	JobQueue   chan jobModel.Job
	Dispatcher chan struct{}
	Store      jobModel.JobStore

	requestCount atomic.Int64
	logger       *logger_i.Logger
}

func NewJobService(store jobModel.JobStore) *JobService {
	return &JobService{
		JobQueue:   make(chan jobModel.Job, config.BufferLimit),
		Dispatcher: make(chan struct{}, config.BufferLimit),
		Store:      store,
		logger:     logger_i.NewLogger("JobService"),
	}
}

// CreateJob registers and enqueues one ingestion job. A full queue rejects
// rather than blocks the upload request.
func (j *JobService) CreateJob(ctx context.Context, traceId string, fileName string, filePath string) (jobModel.Job, error) {
	newJob := jobModel.Job{
		Id:          uuid.NewString(),
		TraceId:     traceId,
		CreatedTime: time.Now(),
		Status:      jobModel.JobStatusQueued,
		CurrentStep: jobModel.IngestInit,
		JobPayload: jobModel.JobPayload{
			IngestFileName: fileName,
			IngestURL:      filePath,
		},
	}

	if err := j.Store.SaveJob(ctx, newJob); err != nil {
		return jobModel.Job{}, fmt.Errorf("save job: %w", err)
	}

	select {
	case j.JobQueue <- newJob:
	default:
		j.Store.DeleteJob(ctx, newJob.Id)
		return jobModel.Job{}, fmt.Errorf("ingestion queue full")
	}

	metrics.IncrementJobsInQueue()
	j.requestCount.Add(1)
	j.signalDispatcher()

	j.logger.Info("job queued", "jobId", newJob.Id, "file", fileName)
	return newJob, nil
}

func (j *JobService) GetJob(ctx context.Context, jobId string) (jobModel.Job, bool) {
	return j.Store.GetJob(ctx, jobId)
}

func (j *JobService) RequestCount() int64 {
	return j.requestCount.Load()
}

func (j *JobService) signalDispatcher() {
	select {
	case j.Dispatcher <- struct{}{}:
		metrics.StartDispatcherSignalCount()
	default:
	}
}
