package adapter

import (
	"manualqa/internal/api"
	"manualqa/internal/domain/jobModel"
	"manualqa/internal/rag"
)

func ToJobResponse(job jobModel.Job) api.JobResponse {
	response := api.JobResponse{
		JobId:        job.Id,
		Status:       string(job.Status),
		CurrentStep:  string(job.CurrentStep),
		FileName:     job.JobPayload.IngestFileName,
		ChunkCount:   job.JobPayload.ChunkCount,
		IndexedCount: job.JobPayload.IndexedCount,
		Error:        job.Error.Message,
		CreatedTime:  job.CreatedTime,
	}
	if !job.EndTime.IsZero() {
		endTime := job.EndTime
		response.EndTime = &endTime
	}
	return response
}

func ToQueryResponse(result rag.QueryResult, sessionId string) api.QueryResponse {
	sources := make([]api.SourceResponse, 0, len(result.Sources))
	for _, s := range result.Sources {
		sources = append(sources, api.SourceResponse{
			Content:     s.Content,
			PageNumber:  s.PageNumber,
			Score:       s.Score,
			ScoreSpace:  s.ScoreSpace,
			SectionType: s.SectionType,
			HasImages:   s.HasImages,
		})
	}

	return api.QueryResponse{
		Question:     result.Question,
		Answer:       result.Answer,
		Sources:      sources,
		SearchTime:   result.SearchTime,
		SearchType:   result.SearchType,
		ResultsCount: result.ResultsCount,
		Confidence:   result.Confidence,
		SessionId:    sessionId,
		Error:        result.Err,
	}
}

func ToStatusResponse(status rag.SystemStatus) api.SystemStatusResponse {
	return api.SystemStatusResponse{
		SearchHealthy:    status.SearchHealthy,
		EmbeddingHealthy: status.EmbeddingHealthy,
		DocumentCount:    status.DocumentCount,
		IndexSize:        status.IndexSize,
		ClusterStatus:    status.ClusterStatus,
		Timestamp:        status.Timestamp,
	}
}
