package utils

import (
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	once   sync.Once
	router *chi.Mux
)

// GetRouter returns the shared router with the operational routes already
// mounted.
func GetRouter() *chi.Mux {
	once.Do(func() {
		router = chi.NewRouter()
		router.Handle("/metrics", promhttp.Handler())
		router.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	})
	return router
}
