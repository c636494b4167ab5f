package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/akarpov87/job-tracker-api/internal/logger"
	"github.com/akarpov87/job-tracker-api/internal/models"
	"github.com/akarpov87/job-tracker-api/internal/services"
)

// ApplicationUpdater defines the interface that the service must implement.
type ApplicationUpdater interface {
	Update(ctx context.Context, userID, applicationID uuid.UUID, patch models.ApplicationPatch) (*models.ApplicationDB, error)
}

// UpdateApplicationRequest represents the JSON body for a partial update.
// Omitted fields are left unchanged.
// swagger:model UpdateApplicationRequest
type UpdateApplicationRequest struct {
	CompanyName     *string `json:"company_name" validate:"omitempty,max=200"`
	JobTitle        *string `json:"job_title" validate:"omitempty,max=200"`
	JobURL          *string `json:"job_url" validate:"omitempty,url"`
	JobDescription  *string `json:"job_description" validate:"omitempty,max=5000"`
	Location        *string `json:"location" validate:"omitempty,max=200"`
	SalaryMin       *int    `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax       *int    `json:"salary_max" validate:"omitempty,gte=0"`
	Currency        *string `json:"currency" validate:"omitempty,len=3,alpha"`
	JobType         *string `json:"job_type" validate:"omitempty,oneof=full_time part_time contract internship freelance"`
	RemoteType      *string `json:"remote_type" validate:"omitempty,oneof=on_site remote hybrid"`
	ApplicationDate *string `json:"application_date"`
	Deadline        *string `json:"deadline"`
	Status          *string `json:"status" validate:"omitempty,oneof=applied reviewing phone_screen technical_interview onsite_interview final_round offer rejected withdrawn accepted"`
	Priority        *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Notes           *string `json:"notes" validate:"omitempty,max=2000"`
	ReferralName    *string `json:"referral_name" validate:"omitempty,max=100"`
	ContactEmail    *string `json:"contact_email" validate:"omitempty,email"`
	ContactPerson   *string `json:"contact_person" validate:"omitempty,max=100"`
}

// NewUpdateApplicationHandler returns an HTTP handler for partially
// updating a job application.
// @Summary Update a job application
// @Description Applies the provided fields to one of the authenticated user's applications
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param updateApplicationRequest body handlers.UpdateApplicationRequest true "Fields to update"
// @Success 200 {object} handlers.ApplicationResponse "Updated application"
// @Failure 400 {object} handlers.ApplicationErrorResponse "Validation failed / empty update"
// @Failure 401 {object} handlers.ApplicationErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ApplicationErrorResponse "Application not found"
// @Router /api/jobs/{id} [put]
// @Security BearerAuth
func NewUpdateApplicationHandler(svc ApplicationUpdater, tokener Tokener, validate *validator.Validate) http.HandlerFunc {
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

		var req UpdateApplicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ApplicationErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.CompanyName != nil {
			trimmed := strings.TrimSpace(*req.CompanyName)
			if trimmed == "" {
				writeJSON(w, http.StatusBadRequest, ApplicationErrorResponse{
					Error:   "Validation failed",
					Details: []string{"company_name cannot be empty"},
				})
				return
			}
			req.CompanyName = &trimmed
		}
		if req.JobTitle != nil {
			trimmed := strings.TrimSpace(*req.JobTitle)
			if trimmed == "" {
				writeJSON(w, http.StatusBadRequest, ApplicationErrorResponse{
					Error:   "Validation failed",
					Details: []string{"job_title cannot be empty"},
				})
				return
			}
			req.JobTitle = &trimmed
		}

		if err := validate.Struct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, ApplicationErrorResponse{
				Error:   "Validation failed",
				Details: validationDetails(err),
			})
			return
		}

		applicationDate, err := parseDate(req.ApplicationDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ApplicationErrorResponse{
				Error:   "Validation failed",
				Details: []string{err.Error()},
			})
			return
		}
		deadline, err := parseDate(req.Deadline)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ApplicationErrorResponse{
				Error:   "Validation failed",
				Details: []string{err.Error()},
			})
			return
		}

		patch := models.ApplicationPatch{
			CompanyName:     req.CompanyName,
			JobTitle:        req.JobTitle,
			JobURL:          req.JobURL,
			JobDescription:  req.JobDescription,
			Location:        req.Location,
			SalaryMin:       req.SalaryMin,
			SalaryMax:       req.SalaryMax,
			JobType:         req.JobType,
			RemoteType:      req.RemoteType,
			ApplicationDate: applicationDate,
			Deadline:        deadline,
			Status:          req.Status,
			Priority:        req.Priority,
			Notes:           req.Notes,
			ReferralName:    req.ReferralName,
			ContactEmail:    req.ContactEmail,
			ContactPerson:   req.ContactPerson,
		}
		if req.Currency != nil {
			upper := strings.ToUpper(*req.Currency)
			patch.Currency = &upper
		}

		app, err := svc.Update(r.Context(), userID, applicationID, patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyUpdate):
				writeJSON(w, http.StatusBadRequest, ApplicationErrorResponse{
					Error: "No fields provided for update",
				})
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
