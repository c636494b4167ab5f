package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/akarpov87/job-tracker-api/internal/logger"
	"github.com/akarpov87/job-tracker-api/internal/models"
)

// StatsGetter defines the interface that the service must implement.
type StatsGetter interface {
	Stats(ctx context.Context, userID uuid.UUID) (*models.ApplicationStats, error)
}

// StatsResponse represents the application statistics summary
// swagger:model StatsResponse
type StatsResponse struct {
	// Total number of applications
	// example: 42
	TotalApplications int64 `json:"total_applications"`

	// Counts keyed by status
	ApplicationsByStatus map[string]int64 `json:"applications_by_status"`
}

// NewStatsHandler returns an HTTP handler for the statistics summary.
// @Summary Get application statistics
// @Description Returns total and per-status counts of the authenticated user's applications
// @Tags jobs
// @Produce json
// @Success 200 {object} handlers.StatsResponse "Statistics"
// @Failure 401 {object} handlers.ApplicationErrorResponse "Unauthorized"
// @Router /api/jobs/stats/summary [get]
// @Security BearerAuth
func NewStatsHandler(svc StatsGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actingUserID(w, r, tokener)
		if !ok {
			return
		}

		stats, err := svc.Stats(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ApplicationErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		writeJSON(w, http.StatusOK, StatsResponse{
			TotalApplications:    stats.Total,
			ApplicationsByStatus: stats.ByStatus,
		})
	}
}
