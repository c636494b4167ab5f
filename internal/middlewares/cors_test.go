package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		origins        []string
		method         string
		origin         string
		expectedStatus int
		allowedOrigin  string
	}{
		{
			name:           "AllowAny",
			origins:        []string{"*"},
			method:         http.MethodGet,
			origin:         "https://example.com",
			expectedStatus: http.StatusOK,
			allowedOrigin:  "https://example.com",
		},
		{
			name:           "AllowedOrigin",
			origins:        []string{"https://app.example.com"},
			method:         http.MethodGet,
			origin:         "https://app.example.com",
			expectedStatus: http.StatusOK,
			allowedOrigin:  "https://app.example.com",
		},
		{
			name:           "DisallowedOrigin",
			origins:        []string{"https://app.example.com"},
			method:         http.MethodGet,
			origin:         "https://evil.example.com",
			expectedStatus: http.StatusOK,
			allowedOrigin:  "",
		},
		{
			name:           "Preflight",
			origins:        []string{"*"},
			method:         http.MethodOptions,
			origin:         "https://example.com",
			expectedStatus: http.StatusNoContent,
			allowedOrigin:  "https://example.com",
		},
		{
			name:           "NoOrigin",
			origins:        []string{"*"},
			method:         http.MethodGet,
			origin:         "",
			expectedStatus: http.StatusOK,
			allowedOrigin:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORSMiddleware(tt.origins)(next)
			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.allowedOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSMiddleware_NoOrigins(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	handler := CORSMiddleware(nil)(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
