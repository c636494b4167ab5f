package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov87/job-tracker-api/internal/models"
	"github.com/akarpov87/job-tracker-api/internal/services"
)

// withURLParam injects a chi URL parameter into the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetApplicationHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockApplicationGetter(ctrl)
	tokener := NewMockTokener(ctrl)

	userID := uuid.New()
	applicationID := uuid.New()
	expectAuthenticated(tokener, userID)

	svc.EXPECT().
		Get(gomock.Any(), userID, applicationID).
		Return(&models.ApplicationDB{
			ApplicationID: applicationID,
			UserID:        userID,
			CompanyName:   "Acme",
			JobTitle:      "Go Developer",
			Status:        "applied",
			Priority:      "medium",
			Currency:      "USD",
			CreatedAt:     time.Now(),
		}, nil)

	handler := NewGetApplicationHandler(svc, tokener)
	rr := httptest.NewRecorder()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/jobs/"+applicationID.String(), nil), "id", applicationID.String())
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ApplicationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, applicationID, resp.ID)
	assert.Equal(t, "Acme", resp.CompanyName)
}

func TestGetApplicationHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockApplicationGetter(ctrl)
	tokener := NewMockTokener(ctrl)

	userID := uuid.New()
	applicationID := uuid.New()
	expectAuthenticated(tokener, userID)

	svc.EXPECT().
		Get(gomock.Any(), userID, applicationID).
		Return(nil, services.ErrApplicationNotFound)

	handler := NewGetApplicationHandler(svc, tokener)
	rr := httptest.NewRecorder()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/jobs/"+applicationID.String(), nil), "id", applicationID.String())
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetApplicationHandler_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockApplicationGetter(ctrl)
	tokener := NewMockTokener(ctrl)
	expectAuthenticated(tokener, uuid.New())

	handler := NewGetApplicationHandler(svc, tokener)
	rr := httptest.NewRecorder()

	// A malformed ID is indistinguishable from a missing application.
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/jobs/not-a-uuid", nil), "id", "not-a-uuid")
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetApplicationHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockApplicationGetter(ctrl)
	tokener := NewMockTokener(ctrl)
	expectUnauthenticated(tokener)

	handler := NewGetApplicationHandler(svc, tokener)
	rr := httptest.NewRecorder()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/jobs/"+uuid.NewString(), nil), "id", uuid.NewString())
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
