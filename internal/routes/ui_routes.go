package routes

import (
	"github.com/go-chi/chi/v5"

	"pisos-tracker/internal/api"
	"pisos-tracker/internal/middleware"
)

// RegisterUIRoutes registers the HTML pages and form posts.
// Mutating routes go through the per-IP limiter (nil disables it).
func RegisterUIRoutes(r chi.Router, h *api.Handlers, limiter *middleware.RateLimiter) {
	r.Get("/", h.IndexHandler())
	r.Get("/export", h.ExportHandler())

	r.Get("/add", h.AddFormHandler())
	r.Get("/edit/{id:[0-9]+}", h.EditFormHandler())

	r.Group(func(mut chi.Router) {
		mut.Use(limiter.Handler)

		mut.Post("/add", h.AddHandler())
		mut.Post("/edit/{id:[0-9]+}", h.EditHandler())
		mut.Post("/delete/{id:[0-9]+}", h.DeleteHandler())
	})
}
