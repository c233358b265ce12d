package handlers

import (
	"encoding/json"
	"net/http"

	"manualqa/internal/api"
	"manualqa/internal/domain/sessionModel"
	"manualqa/internal/job"
	"manualqa/internal/rag"
	"manualqa/pkg/logger_i"
)

// Handler carries every dependency the HTTP surface needs.
type Handler struct {
	rag      rag.Service
	jobs     *job.JobService
	sessions sessionModel.SessionLog
	logger   *logger_i.Logger
}

func NewHandler(ragService rag.Service, jobs *job.JobService, sessions sessionModel.SessionLog) *Handler {
	return &Handler{
		rag:      ragService,
		jobs:     jobs,
		sessions: sessions,
		logger:   logger_i.NewLogger("Handlers"),
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, api.ErrorResponse{Error: message})
}
