package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Healthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := NewMockPinger(ctrl)
	db.EXPECT().PingContext(gomock.Any()).Return(nil)

	handler := NewHealthHandler(db, "1.0.0")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "job-tracker-api", resp.Service)
	assert.Equal(t, "1.0.0", resp.Version)
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := NewMockPinger(ctrl)
	db.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused"))

	handler := NewHealthHandler(db, "1.0.0")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
}

func TestRootHandler(t *testing.T) {
	handler := NewRootHandler("1.0.0")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp RootResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Job Application Tracker API", resp.Message)
	assert.Equal(t, "/docs", resp.Docs)
	assert.Equal(t, "/health", resp.Health)
}
