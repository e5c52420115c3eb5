// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/invoice-entry/internal/service"
	"github.com/MKhiriev/invoice-entry/internal/utils"
	"github.com/MKhiriev/invoice-entry/models"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/invoice/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "scheme is case insensitive", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty header", header: "", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "only spaces", header: "   ", wantErr: ErrInvalidAuthorizationHeader},
		{name: "extra parts", header: "Bearer token extra-part", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		authHeader   string
		authorizeErr error
		expectCall   bool
		wantStatus   int
		wantNext     bool
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", authHeader: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "no active session", authHeader: "Bearer abc", expectCall: true, authorizeErr: service.ErrSessionNotFound, wantStatus: http.StatusUnauthorized},
		{name: "foreign token", authHeader: "Bearer abc", expectCall: true, authorizeErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer abc", expectCall: true, wantStatus: http.StatusOK, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			if tt.expectCall {
				deps.identity.EXPECT().
					Authorize(gomock.Any(), "abc").
					Return(models.Session{Username: "jane", Token: "abc"}, tt.authorizeErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if !tt.wantNext {
				assert.NotEmpty(t, decode[utils.ErrorResponse](t, rr).Error)
			}
		})
	}
}

func TestAuth_UsernameInContext(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.identity.EXPECT().Authorize(gomock.Any(), "abc").Return(models.Session{Username: "jane"}, nil)

	var username string
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok = utils.GetUsernameFromContext(r.Context())
	})

	executeAuth(h, "Bearer abc", next)

	require.True(t, ok)
	assert.Equal(t, "jane", username)
}
