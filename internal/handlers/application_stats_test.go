package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov87/job-tracker-api/internal/models"
)

func TestStatsHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockStatsGetter(ctrl)
	tokener := NewMockTokener(ctrl)

	userID := uuid.New()
	expectAuthenticated(tokener, userID)

	svc.EXPECT().Stats(gomock.Any(), userID).Return(&models.ApplicationStats{
		Total: 4,
		ByStatus: map[string]int64{
			"applied": 3,
			"offer":   1,
		},
	}, nil)

	handler := NewStatsHandler(svc, tokener)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/jobs/stats/summary", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.TotalApplications)
	assert.Equal(t, int64(3), resp.ApplicationsByStatus["applied"])
	assert.Equal(t, int64(1), resp.ApplicationsByStatus["offer"])
}

func TestStatsHandler_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockStatsGetter(ctrl)
	tokener := NewMockTokener(ctrl)

	userID := uuid.New()
	expectAuthenticated(tokener, userID)

	svc.EXPECT().Stats(gomock.Any(), userID).Return(nil, errors.New("db down"))

	handler := NewStatsHandler(svc, tokener)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/jobs/stats/summary", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestStatsHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockStatsGetter(ctrl)
	tokener := NewMockTokener(ctrl)
	expectUnauthenticated(tokener)

	handler := NewStatsHandler(svc, tokener)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/jobs/stats/summary", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
