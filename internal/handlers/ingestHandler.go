package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"manualqa/internal/api"
	"manualqa/internal/config"
)

const maxUploadBytes = 100 << 20

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".md":   true,
	".docx": true,
	".odt":  true,
	".rtf":  true,
}

// HandleIngest godoc
// @Summary      Upload a manual for ingestion
// @Description  Accepts one file as multipart form data, queues it and returns a job id to poll.
// @Tags         ingest
// @Accept       multipart/form-data
// @Produce      json
// @Param        document       formData  file    true   "manual document"
// @Param        document_name  formData  string  false  "display name override"
// @Success      202  {object}  api.InitJobResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /ingest [post]
func (h *Handler) HandleIngest(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("document")
	if err != nil {
		respondError(w, http.StatusBadRequest, "document field is required")
		return
	}
	defer file.Close()

	fileName := filepath.Base(header.Filename)
	if name := r.FormValue("document_name"); name != "" {
		fileName = filepath.Base(name)
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(fileName))] {
		respondError(w, http.StatusBadRequest, "unsupported file type")
		return
	}

	tempFile, err := os.CreateTemp("", "upload-*"+filepath.Ext(fileName))
	if err != nil {
		h.logger.Error("temp file creation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not store upload")
		return
	}
	if _, err := io.Copy(tempFile, file); err != nil {
		tempFile.Close()
		os.Remove(tempFile.Name())
		h.logger.Error("upload write failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not store upload")
		return
	}
	tempFile.Close()

	traceId, _ := r.Context().Value(config.TRACE_ID_KEY).(string)
	queued, err := h.jobs.CreateJob(r.Context(), traceId, fileName, tempFile.Name())
	if err != nil {
		os.Remove(tempFile.Name())
		h.logger.Error("job creation failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	respondJSON(w, http.StatusAccepted, api.InitJobResponse{
		JobId:     queued.Id,
		Status:    string(queued.Status),
		StatusURL: "/status/" + queued.Id,
	})
}
