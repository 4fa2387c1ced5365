// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/coursedesk/internal/platform/constants"
	"github.com/taibuivan/coursedesk/internal/platform/ctxutil"
	"github.com/taibuivan/coursedesk/internal/platform/middleware"
	"github.com/taibuivan/coursedesk/internal/platform/sec"
)

type stubVerifier struct {
	claims *sec.AuthClaims
	err    error
}

func (v stubVerifier) VerifyToken(string) (*sec.AuthClaims, error) { return v.claims, v.err }

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("X-User", ctxutil.GetUserID(request.Context()))
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestAuthenticate covers anonymous, malformed, rejected and accepted tokens.
*/
func TestAuthenticate(t *testing.T) {
	teacher := &sec.AuthClaims{UserID: "teacher-1", Role: string(sec.RoleTeacher)}

	tests := []struct {
		name     string
		header   string
		verifier stubVerifier
		status   int
		user     string
	}{
		{"anonymous", "", stubVerifier{}, http.StatusOK, ""},
		{"bad_scheme", "Basic abc", stubVerifier{claims: teacher}, http.StatusUnauthorized, ""},
		{"rejected", "Bearer abc", stubVerifier{err: errors.New("expired")}, http.StatusUnauthorized, ""},
		{"accepted", "Bearer abc", stubVerifier{claims: teacher}, http.StatusOK, "teacher-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			middleware.Authenticate(tt.verifier)(okHandler()).ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
			assert.Equal(t, tt.user, recorder.Header().Get("X-User"))
		})
	}
}

/*
TestRequireRole checks 401 for anonymous and 403 for students.
*/
func TestRequireRole(t *testing.T) {
	handler := middleware.RequireRole(sec.RoleTeacher)(okHandler())

	tests := []struct {
		name   string
		claims *sec.AuthClaims
		status int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"student", &sec.AuthClaims{UserID: "s", Role: string(sec.RoleStudent)}, http.StatusForbidden},
		{"teacher", &sec.AuthClaims{UserID: "t", Role: string(sec.RoleTeacher)}, http.StatusOK},
		{"admin", &sec.AuthClaims{UserID: "a", Role: string(sec.RoleAdmin)}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/courses", nil)
			if tt.claims != nil {
				request = request.WithContext(ctxutil.WithClaims(request.Context(), tt.claims))
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

/*
TestRequestID_Propagation checks that inbound IDs are echoed and missing ones generated.
*/
func TestRequestID_Propagation(t *testing.T) {
	handler := middleware.RequestID()(okHandler())

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	request.Header.Set(constants.HeaderXRequestID, "req-1")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "req-1", recorder.Header().Get(constants.HeaderXRequestID))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Len(t, recorder.Header().Get(constants.HeaderXRequestID), 36)
}

/*
TestRateLimiter_Burst checks that the bucket empties after the burst.
*/
func TestRateLimiter_Burst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := middleware.NewRateLimiter(ctx, 0.001, 2)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
}

/*
TestPanicRecovery checks that a panicking handler yields 500.
*/
func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

type corsConfig struct{ dev bool }

func (c corsConfig) IsDevelopment() bool         { return c.dev }
func (c corsConfig) TrustedOriginSuffix() string { return "coursedesk.app" }

/*
TestCORS_Production checks that only trusted origins receive CORS headers.
*/
func TestCORS_Production(t *testing.T) {
	handler := middleware.CORS(corsConfig{dev: false})(okHandler())

	request := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	request.Header.Set("Origin", "https://studio.coursedesk.app")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "https://studio.coursedesk.app", recorder.Header().Get("Access-Control-Allow-Origin"))

	request = httptest.NewRequest(http.MethodOptions, "/api/categories", nil)
	request.Header.Set("Origin", "https://evil.example")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
