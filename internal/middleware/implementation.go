package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"manualqa/internal/config"
	"manualqa/internal/metrics"
)

func injectTrace(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		traceId := r.Header.Get("X-Trace-Id")
		if traceId == "" {
			traceId = uuid.NewString()
		}

		w.Header().Set("X-Trace-Id", traceId)
		ctx := context.WithValue(r.Context(), config.TRACE_ID_KEY, traceId)
		next(w, r.WithContext(ctx))
	}
}

func authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if config.NoAuthBypass {
			next(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token != config.AuthToken {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func captureMetrics(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recorder := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK}
		next(recorder, r)
		metrics.HttpRequestsTotal.WithLabelValues(path, strconv.Itoa(recorder.Status)).Inc()
	}
}
