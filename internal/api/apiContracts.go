package api

import (
	"time"

	"manualqa/internal/domain/docModel"
)

type QueryRequest struct {
	Question   string `json:"question" example:"브레이크 경고등이 켜지면 어떻게 하나요?"`
	SearchType string `json:"search_type,omitempty" example:"hybrid"`
	K          int    `json:"k,omitempty" example:"5"`
}

type SourceResponse struct {
	Content     string               `json:"content"`
	PageNumber  int                  `json:"page_number"`
	Score       float64              `json:"score"`
	ScoreSpace  string               `json:"score_space"`
	SectionType docModel.SectionType `json:"section_type"`
	HasImages   bool                 `json:"has_images"`
}

type QueryResponse struct {
	Question     string           `json:"question"`
	Answer       string           `json:"answer"`
	Sources      []SourceResponse `json:"sources"`
	SearchTime   float64          `json:"search_time"`
	SearchType   string           `json:"search_type"`
	ResultsCount int              `json:"results_count"`
	Confidence   float64          `json:"confidence"`
	SessionId    string           `json:"session_id,omitempty"`
	Error        string           `json:"error,omitempty"`
}

type InitJobResponse struct {
	JobId     string `json:"job_id"`
	Status    string `json:"status"`
	StatusURL string `json:"status_url"`
}

type JobResponse struct {
	JobId        string     `json:"job_id"`
	Status       string     `json:"status"`
	CurrentStep  string     `json:"current_step"`
	FileName     string     `json:"file_name,omitempty"`
	ChunkCount   int        `json:"chunk_count,omitempty"`
	IndexedCount int        `json:"indexed_count,omitempty"`
	Error        string     `json:"error,omitempty"`
	CreatedTime  time.Time  `json:"created_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}

type SystemStatusResponse struct {
	SearchHealthy    bool      `json:"search_healthy"`
	EmbeddingHealthy bool      `json:"embedding_healthy"`
	DocumentCount    int64     `json:"document_count"`
	IndexSize        int64     `json:"index_size"`
	ClusterStatus    string    `json:"cluster_status"`
	Timestamp        time.Time `json:"timestamp"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
