package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov87/job-tracker-api/internal/models"
)

func TestCreateApplicationHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockApplicationCreator(ctrl)
	tokener := NewMockTokener(ctrl)

	userID := uuid.New()
	applicationID := uuid.New()
	expectAuthenticated(tokener, userID)

	svc.EXPECT().
		Create(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, app models.ApplicationDB) (*models.ApplicationDB, error) {
			assert.Equal(t, "Tech Corp", app.CompanyName)
			assert.Equal(t, "Go Developer", app.JobTitle)
			assert.Equal(t, "EUR", app.Currency)
			require.NotNil(t, app.ApplicationDate)
			assert.Equal(t, "2026-08-01", app.ApplicationDate.Format("2006-01-02"))

			app.ApplicationID = applicationID
			app.UserID = userID
			app.Status = models.StatusApplied
			app.Priority = models.PriorityMedium
			app.CreatedAt = time.Now()
			return &app, nil
		})

	handler := NewCreateApplicationHandler(svc, tokener, validator.New())

	body := `{
		"company_name": "  Tech Corp  ",
		"job_title": "Go Developer",
		"currency": "eur",
		"salary_min": 50000,
		"salary_max": 70000,
		"application_date": "2026-08-01"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp ApplicationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, applicationID, resp.ID)
	assert.Equal(t, "Tech Corp", resp.CompanyName)
	require.NotNil(t, resp.ApplicationDate)
	assert.Equal(t, "2026-08-01", *resp.ApplicationDate)
	require.NotNil(t, resp.DaysSinceApplied)
}

func TestCreateApplicationHandler_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"InvalidJSON", `{`},
		{"MissingCompanyName", `{"job_title":"Go Developer"}`},
		{"BlankCompanyName", `{"company_name":"   ","job_title":"Go Developer"}`},
		{"MissingJobTitle", `{"company_name":"Tech Corp"}`},
		{"BadStatus", `{"company_name":"Tech Corp","job_title":"Dev","status":"ghosted_me"}`},
		{"BadJobType", `{"company_name":"Tech Corp","job_title":"Dev","job_type":"gig"}`},
		{"BadCurrency", `{"company_name":"Tech Corp","job_title":"Dev","currency":"EURO"}`},
		{"BadContactEmail", `{"company_name":"Tech Corp","job_title":"Dev","contact_email":"nope"}`},
		{"SalaryMaxBelowMin", `{"company_name":"Tech Corp","job_title":"Dev","salary_min":90000,"salary_max":50000}`},
		{"BadDate", `{"company_name":"Tech Corp","job_title":"Dev","application_date":"01/08/2026"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockApplicationCreator(ctrl)
			tokener := NewMockTokener(ctrl)
			expectAuthenticated(tokener, uuid.New())

			handler := NewCreateApplicationHandler(svc, tokener, validator.New())

			req := httptest.NewRequest(http.MethodPost, "/api/jobs/", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestCreateApplicationHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockApplicationCreator(ctrl)
	tokener := NewMockTokener(ctrl)
	expectUnauthenticated(tokener)

	handler := NewCreateApplicationHandler(svc, tokener, validator.New())

	req := httptest.NewRequest(http.MethodPost, "/api/jobs/", bytes.NewBufferString(`{"company_name":"Tech Corp","job_title":"Dev"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
