package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"manualqa/internal/adapter/utils"
	"manualqa/internal/config"
	"manualqa/internal/handlers"
	"manualqa/internal/middleware"
	"manualqa/pkg/logger_i"
)

// CreateServer mounts the API routes on the shared router and returns the
// configured http server. The caller owns ListenAndServe.
func CreateServer(h *handlers.Handler) *http.Server {
	router := utils.GetRouter()

	router.Post("/query", middleware.Wrap("/query", h.HandleQuery))
	router.Post("/ingest", middleware.Wrap("/ingest", h.HandleIngest))
	router.Get("/status/{jobId}", middleware.Wrap("/status", h.HandleJobStatus))
	router.Get("/system/status", middleware.Wrap("/system/status", h.HandleSystemStatus))
	router.Post("/system/setup", middleware.Wrap("/system/setup", h.HandleSystemSetup))
	router.Post("/system/reset", middleware.Wrap("/system/reset", h.HandleSystemReset))

	return &http.Server{
		Addr:         config.ServerListenAddr,
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}
}

// ShutDownHandler blocks until SIGINT or SIGTERM, then drains the server
// within the shutdown budget and cancels the worker context.
func ShutDownHandler(srv *http.Server, cancelWorkers context.CancelFunc) {
	logger := logger_i.NewLogger("Server")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutdown signal received")
	cancelWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown did not finish cleanly", "error", err)
		return
	}
	logger.Info("server stopped")
}
