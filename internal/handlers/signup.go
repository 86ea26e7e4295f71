package handlers

import (
	"context"
	"net/http"
)

// Signuper defines the signup operation.
type Signuper interface {
	Signup(ctx context.Context, email, password, nickname string) (string, error)
}

// SignupRequest represents the JSON body for local signup
// swagger:model SignupRequest
type SignupRequest struct {
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// required: true
	// default: Pw1!aaaa
	Password string `json:"password"`

	// Defaults to the local part of the email
	// default: alice
	Nickname string `json:"nickname"`
}

// NewSignupHandler returns an HTTP handler starting a local registration.
// The verification token travels only by email.
// @Summary Sign up with email and password
// @Description Creates a pending registration and emails a verification link.
// @Tags local
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 201 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or password longer than 72 bytes"
// @Failure 403 {object} handlers.ErrorResponse "Local signup disabled"
// @Failure 409 {object} handlers.ErrorResponse "Email or login id taken, or registration pending"
// @Router /auth/local/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if _, err := svc.Signup(r.Context(), req.Email, req.Password, req.Nickname); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, MessageResponse{Message: "verification email sent"})
	}
}
