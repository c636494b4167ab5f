package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/akarpov87/job-tracker-api/internal/jwt"
	"github.com/akarpov87/job-tracker-api/internal/logger"
	"github.com/akarpov87/job-tracker-api/internal/models"
)

const dateLayout = "2006-01-02"

// Tokener defines the token operations protected handlers need.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ApplicationResponse represents a job application in API responses
// swagger:model ApplicationResponse
type ApplicationResponse struct {
	ID               uuid.UUID `json:"id"`
	CompanyName      string    `json:"company_name"`
	JobTitle         string    `json:"job_title"`
	JobURL           *string   `json:"job_url"`
	JobDescription   *string   `json:"job_description"`
	Location         *string   `json:"location"`
	SalaryMin        *int      `json:"salary_min"`
	SalaryMax        *int      `json:"salary_max"`
	Currency         string    `json:"currency"`
	JobType          *string   `json:"job_type"`
	RemoteType       *string   `json:"remote_type"`
	ApplicationDate  *string   `json:"application_date"`
	Deadline         *string   `json:"deadline"`
	Status           string    `json:"status"`
	Priority         string    `json:"priority"`
	Notes            *string   `json:"notes"`
	ReferralName     *string   `json:"referral_name"`
	ContactEmail     *string   `json:"contact_email"`
	ContactPerson    *string   `json:"contact_person"`
	DaysSinceApplied *int      `json:"days_since_applied"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

// ApplicationErrorResponse represents an error response for application endpoints
// swagger:model ApplicationErrorResponse
type ApplicationErrorResponse struct {
	// Error message
	// example: Application not found
	Error string `json:"error"`

	// Optional field-level detail
	Details []string `json:"details,omitempty"`
}

func toApplicationResponse(app *models.ApplicationDB) ApplicationResponse {
	return ApplicationResponse{
		ID:               app.ApplicationID,
		CompanyName:      app.CompanyName,
		JobTitle:         app.JobTitle,
		JobURL:           app.JobURL,
		JobDescription:   app.JobDescription,
		Location:         app.Location,
		SalaryMin:        app.SalaryMin,
		SalaryMax:        app.SalaryMax,
		Currency:         app.Currency,
		JobType:          app.JobType,
		RemoteType:       app.RemoteType,
		ApplicationDate:  formatDate(app.ApplicationDate),
		Deadline:         formatDate(app.Deadline),
		Status:           app.Status,
		Priority:         app.Priority,
		Notes:            app.Notes,
		ReferralName:     app.ReferralName,
		ContactEmail:     app.ContactEmail,
		ContactPerson:    app.ContactPerson,
		DaysSinceApplied: app.DaysSinceApplied(),
		CreatedAt:        app.CreatedAt,
		UpdatedAt:        app.UpdatedAt,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *s)
	}
	return &t, nil
}

// actingUserID resolves the authenticated user from the bearer token.
// Writes a 401 response and returns false when the token is missing or
// invalid.
func actingUserID(w http.ResponseWriter, r *http.Request, tokener Tokener) (uuid.UUID, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Infow("unauthorized request: missing token", "err", err)
		writeJSON(w, http.StatusUnauthorized, ApplicationErrorResponse{Error: "Unauthorized"})
		return uuid.Nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Infow("unauthorized request: invalid token", "err", err)
		writeJSON(w, http.StatusUnauthorized, ApplicationErrorResponse{Error: "Unauthorized"})
		return uuid.Nil, false
	}

	return claims.UserID, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// validationDetails flattens validator errors into readable messages.
func validationDetails(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			details = append(details, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		case "min":
			details = append(details, fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
		case "max":
			details = append(details, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		case "oneof":
			details = append(details, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		case "len":
			details = append(details, fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param()))
		default:
			details = append(details, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return details
}
