package router

import (
	"net/http"
	"time"

	"locodhaasu-be/internal/config"
	"locodhaasu-be/internal/logger"
	"locodhaasu-be/internal/middleware"
	"locodhaasu-be/internal/order"
	"locodhaasu-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// New wires the HTTP surface: health probe, order intake and queries,
// status updates, and the dashboard aggregates.
func New(cfg *config.Config, orders *order.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(
		logger.RequestIDMiddleware,
		logger.LoggingMiddleware,
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			AllowCredentials: true,
		}),
		middleware.RateLimitMiddleware,
	)

	r.Get("/health", Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orders.Create)
			r.Get("/", orders.List)
			r.Get("/{orderID}", orders.Get)
			r.Patch("/{orderID}", orders.UpdateStatus)
		})

		r.Get("/dashboard/stats", orders.Stats)
	})

	return r
}

// Health is the liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}
