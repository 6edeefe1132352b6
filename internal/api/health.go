package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pisos-tracker/internal/models/entities"
)

// CheckHandler handles GET /check
// Plain-text confirmation that the pisos table answers, with its row count.
func (h *Handlers) CheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		count, err := h.deps.Services.Listings.Count(r.Context())
		if err != nil {
			h.log(r).Errorw("Check failed", "error", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "Error: %v\n", err)
			return
		}

		fmt.Fprintf(w, "La tabla 'pisos' existe. Total registros: %d\n", count)
	}
}

// HealthCheckHandler handles GET /healthCheck
func (h *Handlers) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)

		dbStatus := "ok"
		dbDetails := "Database connected"
		if err := h.deps.Services.Listings.Ping(r.Context()); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		}
		services["database"] = entities.ServiceStatus{
			Status:  dbStatus,
			Details: dbDetails,
		}

		var count int64
		if dbStatus == "ok" {
			c, err := h.deps.Services.Listings.Count(r.Context())
			if err != nil {
				services["database"] = entities.ServiceStatus{Status: "down", Details: err.Error()}
			}
			count = c
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		resp := entities.HealthCheckResponse{
			Services:     services,
			Status:       overallStatus,
			ListingCount: count,
			UpSince:      h.deps.UpSince,
			Uptime:       time.Since(h.deps.UpSince).Round(time.Second).String(),
		}

		w.Header().Set("Content-Type", "application/json")
		if overallStatus != "ok" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
