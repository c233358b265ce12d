package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"manualqa/internal/adapter"
)

// HandleJobStatus godoc
// @Summary      Poll an ingestion job
// @Tags         ingest
// @Produce      json
// @Param        jobId  path      string  true  "job id from the ingest response"
// @Success      200    {object}  api.JobResponse
// @Failure      404    {object}  api.ErrorResponse
// @Router       /status/{jobId} [get]
func (h *Handler) HandleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobId := chi.URLParam(r, "jobId")
	if jobId == "" {
		respondError(w, http.StatusBadRequest, "jobId is required")
		return
	}

	queued, found := h.jobs.GetJob(r.Context(), jobId)
	if !found {
		respondError(w, http.StatusNotFound, "job not found")
		return
	}

	respondJSON(w, http.StatusOK, adapter.ToJobResponse(queued))
}
