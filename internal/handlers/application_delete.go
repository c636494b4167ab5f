package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/akarpov87/job-tracker-api/internal/logger"
	"github.com/akarpov87/job-tracker-api/internal/services"
)

// ApplicationDeleter defines the interface that the service must implement.
type ApplicationDeleter interface {
	Delete(ctx context.Context, userID, applicationID uuid.UUID) error
}

// DeleteApplicationResponse represents a successful delete response
// swagger:model DeleteApplicationResponse
type DeleteApplicationResponse struct {
	// Success message
	// example: Application deleted successfully
	Message string `json:"message"`

	DeletedID uuid.UUID `json:"deleted_id"`
}

// NewDeleteApplicationHandler returns an HTTP handler for deleting a
// job application.
// @Summary Delete a job application
// @Description Deletes one of the authenticated user's applications by ID
// @Tags jobs
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} handlers.DeleteApplicationResponse "Application deleted"
// @Failure 401 {object} handlers.ApplicationErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ApplicationErrorResponse "Application not found"
// @Router /api/jobs/{id} [delete]
// @Security BearerAuth
func NewDeleteApplicationHandler(svc ApplicationDeleter, tokener Tokener) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), userID, applicationID); err != nil {
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

		writeJSON(w, http.StatusOK, DeleteApplicationResponse{
			Message:   "Application deleted successfully",
			DeletedID: applicationID,
		})
	}
}
