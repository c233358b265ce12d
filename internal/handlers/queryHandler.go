package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"manualqa/internal/adapter"
	"manualqa/internal/api"
	"manualqa/internal/domain/sessionModel"
	"manualqa/internal/rag"
)

// HandleQuery godoc
// @Summary      Answer a question from the indexed manuals
// @Description  Runs retrieval and answer generation synchronously. Failures are reported inside the response body, the endpoint itself answers 200 whenever the request was well-formed.
// @Tags         query
// @Accept       json
// @Produce      json
// @Param        request  body      api.QueryRequest  true  "question and search options"
// @Success      200      {object}  api.QueryResponse
// @Failure      400      {object}  api.ErrorResponse
// @Router       /query [post]
func (h *Handler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	var request api.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(request.Question) == "" {
		respondError(w, http.StatusBadRequest, "question is required")
		return
	}

	result := h.rag.Query(r.Context(), request.Question, request.SearchType, request.K)
	sessionId := h.logSession(r.Context(), result)

	respondJSON(w, http.StatusOK, adapter.ToQueryResponse(result, sessionId))
}

// logSession records the answered question for later review. Logging
// failure never affects the response.
func (h *Handler) logSession(ctx context.Context, result rag.QueryResult) string {
	sources := make([]sessionModel.SessionSource, 0, len(result.Sources))
	for _, s := range result.Sources {
		sources = append(sources, sessionModel.SessionSource{
			Content:    s.Content,
			PageNumber: s.PageNumber,
			Score:      s.Score,
		})
	}

	sessionId, err := h.sessions.Append(ctx, sessionModel.SessionRecord{
		Question:       result.Question,
		Answer:         result.Answer,
		Sources:        sources,
		SearchType:     result.SearchType,
		ResultsCount:   result.ResultsCount,
		Confidence:     result.Confidence,
		LatencySeconds: result.SearchTime,
		Error:          result.Err,
		CreatedTime:    time.Now(),
	})
	if err != nil {
		h.logger.Error("session logging failed", "error", err)
		return ""
	}
	return sessionId
}
