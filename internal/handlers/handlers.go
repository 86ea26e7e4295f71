// Package handlers adapts the identity service to HTTP.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-identity/internal/facades"
	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/middlewares"
	"github.com/sbilibin2017/gw-identity/internal/services"
)

//go:generate mockgen -destination=mocks.go -package=handlers . Signuper,Resender,Verifier,LocalSignIner,AuthorizationURLer,OAuthCallbackSignIner,OAuthTokenSignIner,IssueCodeRedeemer,Refresher,UserDeleter

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: conflict: email already registered
	Error string `json:"error"`
}

// MessageResponse is returned by operations without a payload
// swagger:model MessageResponse
type MessageResponse struct {
	// default: verification email sent
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrAlreadyVerified):
		return http.StatusConflict
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrUnsupportedProvider):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnauthorized),
		errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, services.ErrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, services.ErrUnverifiedEmail),
		errors.Is(err, services.ErrInvalidArgument),
		errors.Is(err, services.ErrCodeMismatch),
		errors.Is(err, services.ErrMalformedPayload):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrFeatureDisabled):
		return http.StatusForbidden
	case errors.Is(err, facades.ErrProviderRequest),
		errors.Is(err, facades.ErrProviderResponse),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err with its mapped status. Internal and token errors
// are reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	msg := err.Error()
	switch {
	case status == http.StatusInternalServerError:
		logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
		msg = "internal server error"
	case status == http.StatusBadGateway:
		logger.Log.Errorw("identity provider failure", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
		msg = "identity provider unavailable"
	case errors.Is(err, services.ErrExpiredToken):
		msg = services.ErrExpiredToken.Error()
	case errors.Is(err, services.ErrInvalidToken):
		msg = services.ErrInvalidToken.Error()
	case errors.Is(err, services.ErrMalformedPayload):
		msg = services.ErrMalformedPayload.Error()
	}

	writeJSON(w, status, ErrorResponse{Error: msg})
}
