package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/akarpov87/job-tracker-api/internal/logger"
	"github.com/akarpov87/job-tracker-api/internal/models"
	"github.com/akarpov87/job-tracker-api/internal/services"
)

// Profiler defines the interface that the profile service must implement.
type Profiler interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewProfileHandler returns an HTTP handler for fetching the acting
// user's profile. Identity comes from the bearer token, never from a
// request parameter.
// @Summary Get user profile
// @Description Returns the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse "User profile"
// @Failure 401 {object} handlers.ApplicationErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ApplicationErrorResponse "User not found"
// @Router /api/auth/profile [get]
// @Security BearerAuth
func NewProfileHandler(svc Profiler, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actingUserID(w, r, tokener)
		if !ok {
			return
		}

		user, err := svc.Profile(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeJSON(w, http.StatusNotFound, ApplicationErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ApplicationErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(user))
	}
}
