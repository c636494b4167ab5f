package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/akarpov87/job-tracker-api/internal/logger"
	"github.com/akarpov87/job-tracker-api/internal/models"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ApplicationLister defines the interface that the service must implement.
type ApplicationLister interface {
	List(ctx context.Context, userID uuid.UUID, filter models.ApplicationFilter) ([]models.ApplicationDB, int64, error)
}

// ListApplicationsResponse represents a paginated application listing
// swagger:model ListApplicationsResponse
type ListApplicationsResponse struct {
	Items       []ApplicationResponse `json:"items"`
	Total       int64                 `json:"total"`
	Page        int                   `json:"page"`
	Limit       int                   `json:"limit"`
	Pages       int                   `json:"pages"`
	HasNext     bool                  `json:"has_next"`
	HasPrevious bool                  `json:"has_previous"`
}

// NewListApplicationsHandler returns an HTTP handler for listing the
// authenticated user's job applications.
// @Summary List job applications
// @Description Returns a paginated list of the authenticated user's applications with optional status and company filters
// @Tags jobs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param status query string false "Filter by status"
// @Param company_name query string false "Filter by company name substring"
// @Success 200 {object} handlers.ListApplicationsResponse "Applications"
// @Failure 400 {object} handlers.ApplicationErrorResponse "Invalid query parameters"
// @Failure 401 {object} handlers.ApplicationErrorResponse "Unauthorized"
// @Router /api/jobs/ [get]
// @Security BearerAuth
func NewListApplicationsHandler(svc ApplicationLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actingUserID(w, r, tokener)
		if !ok {
			return
		}

		page, limit, err := parsePagination(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ApplicationErrorResponse{
				Error:   "Invalid query parameters",
				Details: []string{err.Error()},
			})
			return
		}

		filter := models.ApplicationFilter{
			Limit:  limit,
			Offset: (page - 1) * limit,
		}
		if status := r.URL.Query().Get("status"); status != "" {
			if !models.IsValidStatus(status) {
				writeJSON(w, http.StatusBadRequest, ApplicationErrorResponse{
					Error:   "Invalid query parameters",
					Details: []string{"unknown status " + strconv.Quote(status)},
				})
				return
			}
			filter.Status = &status
		}
		if company := r.URL.Query().Get("company_name"); company != "" {
			filter.CompanyName = &company
		}

		apps, total, err := svc.List(r.Context(), userID, filter)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ApplicationErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		items := make([]ApplicationResponse, 0, len(apps))
		for i := range apps {
			items = append(items, toApplicationResponse(&apps[i]))
		}

		pages := 0
		if total > 0 {
			pages = int((total + int64(limit) - 1) / int64(limit))
		}

		writeJSON(w, http.StatusOK, ListApplicationsResponse{
			Items:       items,
			Total:       total,
			Page:        page,
			Limit:       limit,
			Pages:       pages,
			HasNext:     page < pages,
			HasPrevious: page > 1,
		})
	}
}

func parsePagination(r *http.Request) (page, limit int, err error) {
	page = 1
	limit = defaultPageLimit

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, errInvalidPage
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxPageLimit {
			return 0, 0, errInvalidLimit
		}
	}

	return page, limit, nil
}

var (
	errInvalidPage  = &paramError{"page must be a positive integer"}
	errInvalidLimit = &paramError{"limit must be between 1 and 100"}
)

type paramError struct{ msg string }

func (e *paramError) Error() string { return e.msg }
