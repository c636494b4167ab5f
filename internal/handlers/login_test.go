package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov87/job-tracker-api/internal/services"
)

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockLoginer)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name: "Success",
			body: `{"email":"john@example.com","password":"secret123"}`,
			setupMock: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return("token123", nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp LoginResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "token123", resp.AccessToken)
				assert.Equal(t, "bearer", resp.TokenType)
			},
		},
		{
			name:           "InvalidJSON",
			body:           `{`,
			setupMock:      func(m *MockLoginer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "MissingPassword",
			body:           `{"email":"john@example.com"}`,
			setupMock:      func(m *MockLoginer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "BadCredentials",
			body: `{"email":"john@example.com","password":"wrong"}`,
			setupMock: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body []byte) {
				var resp ApplicationErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Invalid email or password", resp.Error)
			},
		},
		{
			name: "ServiceError",
			body: `{"email":"john@example.com","password":"secret123"}`,
			setupMock: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return("", errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockLoginer(ctrl)
			tt.setupMock(svc)

			handler := NewLoginHandler(svc, validator.New())

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}
