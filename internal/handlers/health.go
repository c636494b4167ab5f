package handlers

import (
	"context"
	"net/http"

	"github.com/akarpov87/job-tracker-api/internal/logger"
)

// Pinger checks that the storage backend is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse represents the liveness response
// swagger:model HealthResponse
type HealthResponse struct {
	// example: healthy
	Status string `json:"status"`

	// example: job-tracker-api
	Service string `json:"service"`

	// example: 1.0.0
	Version string `json:"version"`
}

// NewHealthHandler returns an HTTP handler for the liveness probe.
// @Summary Health check
// @Description Reports service health, including database reachability
// @Tags system
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service healthy"
// @Failure 503 {object} handlers.HealthResponse "Database unreachable"
// @Router /health [get]
func NewHealthHandler(db Pinger, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:  "healthy",
			Service: "job-tracker-api",
			Version: version,
		}

		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check: database unreachable", "err", err)
			resp.Status = "unhealthy"
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// RootResponse represents the API info response
// swagger:model RootResponse
type RootResponse struct {
	// example: Job Application Tracker API
	Message string `json:"message"`

	// example: 1.0.0
	Version string `json:"version"`

	// example: /docs
	Docs string `json:"docs"`

	// example: /health
	Health string `json:"health"`
}

// NewRootHandler returns an HTTP handler for the API info endpoint.
// @Summary API information
// @Description Returns service name, version, and useful paths
// @Tags system
// @Produce json
// @Success 200 {object} handlers.RootResponse "API info"
// @Router / [get]
func NewRootHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RootResponse{
			Message: "Job Application Tracker API",
			Version: version,
			Docs:    "/docs",
			Health:  "/health",
		})
	}
}
