package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov87/job-tracker-api/internal/models"
)

func TestListApplicationsHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockApplicationLister(ctrl)
	tokener := NewMockTokener(ctrl)

	userID := uuid.New()
	expectAuthenticated(tokener, userID)

	apps := []models.ApplicationDB{
		{ApplicationID: uuid.New(), UserID: userID, CompanyName: "Acme", JobTitle: "Dev", Status: "applied", Priority: "medium", Currency: "USD", CreatedAt: time.Now()},
		{ApplicationID: uuid.New(), UserID: userID, CompanyName: "Globex", JobTitle: "SRE", Status: "offer", Priority: "high", Currency: "USD", CreatedAt: time.Now()},
	}

	svc.EXPECT().
		List(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, filter models.ApplicationFilter) ([]models.ApplicationDB, int64, error) {
			assert.Equal(t, 2, filter.Limit)
			assert.Equal(t, 2, filter.Offset) // page 2 with limit 2
			require.NotNil(t, filter.Status)
			assert.Equal(t, "applied", *filter.Status)
			return apps, 5, nil
		})

	handler := NewListApplicationsHandler(svc, tokener)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/jobs/?page=2&limit=2&status=applied", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ListApplicationsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, int64(5), resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 2, resp.Limit)
	assert.Equal(t, 3, resp.Pages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrevious)
}

func TestListApplicationsHandler_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockApplicationLister(ctrl)
	tokener := NewMockTokener(ctrl)

	userID := uuid.New()
	expectAuthenticated(tokener, userID)

	svc.EXPECT().
		List(gomock.Any(), userID, gomock.Any()).
		Return([]models.ApplicationDB{}, int64(0), nil)

	handler := NewListApplicationsHandler(svc, tokener)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/jobs/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ListApplicationsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.Pages)
	assert.False(t, resp.HasNext)
	assert.False(t, resp.HasPrevious)
}

func TestListApplicationsHandler_BadParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"ZeroPage", "?page=0"},
		{"NegativePage", "?page=-3"},
		{"NonNumericPage", "?page=abc"},
		{"ZeroLimit", "?limit=0"},
		{"OversizedLimit", "?limit=500"},
		{"UnknownStatus", "?status=ghosted_me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockApplicationLister(ctrl)
			tokener := NewMockTokener(ctrl)
			expectAuthenticated(tokener, uuid.New())

			handler := NewListApplicationsHandler(svc, tokener)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/jobs/"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}
