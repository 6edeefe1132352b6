package routes

import (
	"github.com/go-chi/chi/v5"

	"pisos-tracker/internal/api"
)

// RegisterAPIRoutes registers the read-only JSON endpoints.
func RegisterAPIRoutes(r chi.Router, h *api.Handlers) {
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/listings", h.ListListingsAPIHandler())
	})
}
