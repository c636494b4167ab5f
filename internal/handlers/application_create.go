package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/akarpov87/job-tracker-api/internal/logger"
	"github.com/akarpov87/job-tracker-api/internal/models"
)

// ApplicationCreator defines the interface that the service must implement.
type ApplicationCreator interface {
	Create(ctx context.Context, userID uuid.UUID, app models.ApplicationDB) (*models.ApplicationDB, error)
}

// CreateApplicationRequest represents the JSON body for creating a job application
// swagger:model CreateApplicationRequest
type CreateApplicationRequest struct {
	// Company name
	// required: true
	// example: Tech Corp
	CompanyName string `json:"company_name" validate:"required,max=200"`

	// Job title
	// required: true
	// example: Python Developer
	JobTitle string `json:"job_title" validate:"required,max=200"`

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

// NewCreateApplicationHandler returns an HTTP handler for creating a job application.
// @Summary Create a job application
// @Description Creates a new job application owned by the authenticated user
// @Tags jobs
// @Accept json
// @Produce json
// @Param createApplicationRequest body handlers.CreateApplicationRequest true "Application to create"
// @Success 201 {object} handlers.ApplicationResponse "Application created"
// @Failure 400 {object} handlers.ApplicationErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ApplicationErrorResponse "Unauthorized"
// @Router /api/jobs/ [post]
// @Security BearerAuth
func NewCreateApplicationHandler(svc ApplicationCreator, tokener Tokener, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actingUserID(w, r, tokener)
		if !ok {
			return
		}

		var req CreateApplicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ApplicationErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		req.CompanyName = strings.TrimSpace(req.CompanyName)
		req.JobTitle = strings.TrimSpace(req.JobTitle)

		if err := validate.Struct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, ApplicationErrorResponse{
				Error:   "Validation failed",
				Details: validationDetails(err),
			})
			return
		}

		if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMax <= *req.SalaryMin {
			writeJSON(w, http.StatusBadRequest, ApplicationErrorResponse{
				Error:   "Validation failed",
				Details: []string{"salary_max must be greater than salary_min"},
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

		app := models.ApplicationDB{
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
			Notes:           req.Notes,
			ReferralName:    req.ReferralName,
			ContactEmail:    req.ContactEmail,
			ContactPerson:   req.ContactPerson,
		}
		if req.Currency != nil {
			app.Currency = strings.ToUpper(*req.Currency)
		}
		if req.Status != nil {
			app.Status = *req.Status
		}
		if req.Priority != nil {
			app.Priority = *req.Priority
		}

		saved, err := svc.Create(r.Context(), userID, app)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ApplicationErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		writeJSON(w, http.StatusCreated, toApplicationResponse(saved))
	}
}
