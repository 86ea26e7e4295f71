package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-identity/internal/facades"
	"github.com/sbilibin2017/gw-identity/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrEmailAlreadyExists, http.StatusConflict},
		{services.ErrRegistrationPending, http.StatusConflict},
		{services.ErrAlreadyVerified, http.StatusConflict},
		{services.ErrPendingNotFound, http.StatusNotFound},
		{services.ErrIssueCodeNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: LINE", services.ErrUnsupportedProvider), http.StatusNotFound},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: signature", services.ErrInvalidToken), http.StatusUnauthorized},
		{services.ErrExpiredToken, http.StatusUnauthorized},
		{services.ErrResendTooSoon, http.StatusTooManyRequests},
		{services.ErrResendLimitReached, http.StatusTooManyRequests},
		{services.ErrUnverifiedEmail, http.StatusBadRequest},
		{services.ErrCodeMismatch, http.StatusBadRequest},
		{services.ErrPasswordTooLong, http.StatusBadRequest},
		{services.ErrMalformedPayload, http.StatusBadRequest},
		{services.ErrFeatureDisabled, http.StatusForbidden},
		{fmt.Errorf("%w: google profile status 503", facades.ErrProviderRequest), http.StatusBadGateway},
		{context.DeadlineExceeded, http.StatusBadGateway},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestWriteError_HidesDetail(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"internal", errors.New("pq: password authentication failed"), `{"error":"internal server error"}`},
		{"token", fmt.Errorf("%w: signature is invalid", services.ErrInvalidToken), `{"error":"invalid token"}`},
		{"provider", fmt.Errorf("%w: naver resultcode 024", facades.ErrProviderRequest), `{"error":"identity provider unavailable"}`},
		{"business", services.ErrRegistrationPending, `{"error":"conflict: registration pending, verify or resend instead"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)
			assert.JSONEq(t, tt.want, rr.Body.String())
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}
