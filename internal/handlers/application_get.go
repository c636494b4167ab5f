package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/akarpov87/job-tracker-api/internal/logger"
	"github.com/akarpov87/job-tracker-api/internal/models"
	"github.com/akarpov87/job-tracker-api/internal/services"
)

// ApplicationGetter defines the interface that the service must implement.
type ApplicationGetter interface {
	Get(ctx context.Context, userID, applicationID uuid.UUID) (*models.ApplicationDB, error)
}

// NewGetApplicationHandler returns an HTTP handler for fetching a
// single job application. An application owned by another user is
// reported as not found.
// @Summary Get a job application
// @Description Returns one of the authenticated user's applications by ID
// @Tags jobs
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} handlers.ApplicationResponse "Application"
// @Failure 401 {object} handlers.ApplicationErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ApplicationErrorResponse "Application not found"
// @Router /api/jobs/{id} [get]
// @Security BearerAuth
func NewGetApplicationHandler(svc ApplicationGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actingUserID(w, r, tokener)
		if !ok {
			return
		}

		applicationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, ApplicationErrorResponse{
				Error: "Application not found",
			})
			return
		}

		app, err := svc.Get(r.Context(), userID, applicationID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrApplicationNotFound):
				writeJSON(w, http.StatusNotFound, ApplicationErrorResponse{
					Error: "Application not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ApplicationErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, toApplicationResponse(app))
	}
}
