package handlers

import (
	"net/http"

	"manualqa/internal/adapter"
	"manualqa/internal/api"
)

// HandleSystemStatus godoc
// @Summary      Report backend health and index counters
// @Tags         system
// @Produce      json
// @Success      200  {object}  api.SystemStatusResponse
// @Router       /system/status [get]
func (h *Handler) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	status := h.rag.Status(r.Context())
	respondJSON(w, http.StatusOK, adapter.ToStatusResponse(status))
}

// HandleSystemSetup godoc
// @Summary      Prepare the index and verify collaborators
// @Tags         system
// @Produce      json
// @Success      200  {object}  api.MessageResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /system/setup [post]
func (h *Handler) HandleSystemSetup(w http.ResponseWriter, r *http.Request) {
	if err := h.rag.Setup(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, api.MessageResponse{Message: "system ready"})
}

// HandleSystemReset godoc
// @Summary      Drop and recreate the index
// @Description  Destroys every indexed document. Meant for re-ingesting from scratch.
// @Tags         system
// @Produce      json
// @Success      200  {object}  api.MessageResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /system/reset [post]
func (h *Handler) HandleSystemReset(w http.ResponseWriter, r *http.Request) {
	if err := h.rag.Reset(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, api.MessageResponse{Message: "index reset"})
}
