package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"pisos-tracker/internal/api"
	"pisos-tracker/internal/config"
	"pisos-tracker/internal/logging"
	"pisos-tracker/internal/middleware"
)

// RegisterRoutes builds the chi router for every page and endpoint.
func RegisterRoutes(cfg *config.Config, deps *api.Dependencies) http.Handler {
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	handlers := api.NewHandlers(deps)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// health
	r.Get("/check", handlers.CheckHandler())
	r.Get("/healthCheck", handlers.HealthCheckHandler())

	RegisterUIRoutes(r, handlers, limiter)
	RegisterAPIRoutes(r, handlers)

	logging.Info("Router initialized", "rate_limit_rps", cfg.RateLimit.RPS, "cors_origins", len(cfg.CORSAllowedOrigins))
	return r
}
