package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov87/job-tracker-api/internal/services"
)

func TestDeleteApplicationHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockApplicationDeleter(ctrl)
	tokener := NewMockTokener(ctrl)

	userID := uuid.New()
	applicationID := uuid.New()
	expectAuthenticated(tokener, userID)

	svc.EXPECT().Delete(gomock.Any(), userID, applicationID).Return(nil)

	handler := NewDeleteApplicationHandler(svc, tokener)
	rr := httptest.NewRecorder()

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/jobs/"+applicationID.String(), nil), "id", applicationID.String())
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp DeleteApplicationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Application deleted successfully", resp.Message)
	assert.Equal(t, applicationID, resp.DeletedID)
}

func TestDeleteApplicationHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockApplicationDeleter(ctrl)
	tokener := NewMockTokener(ctrl)

	userID := uuid.New()
	applicationID := uuid.New()
	expectAuthenticated(tokener, userID)

	svc.EXPECT().Delete(gomock.Any(), userID, applicationID).Return(services.ErrApplicationNotFound)

	handler := NewDeleteApplicationHandler(svc, tokener)
	rr := httptest.NewRecorder()

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/jobs/"+applicationID.String(), nil), "id", applicationID.String())
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteApplicationHandler_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockApplicationDeleter(ctrl)
	tokener := NewMockTokener(ctrl)
	expectAuthenticated(tokener, uuid.New())

	handler := NewDeleteApplicationHandler(svc, tokener)
	rr := httptest.NewRecorder()

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/jobs/42", nil), "id", "42")
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
