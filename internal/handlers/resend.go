package handlers

import (
	"context"
	"net/http"
)

// Resender defines the resend operation.
type Resender interface {
	Resend(ctx context.Context, email string) (string, error)
}

// ResendRequest represents the JSON body for resending the verification link
// swagger:model ResendRequest
type ResendRequest struct {
	// required: true
	// default: alice@example.com
	Email string `json:"email"`
}

// NewResendHandler returns an HTTP handler mailing a fresh verification link.
// @Summary Resend verification email
// @Tags local
// @Accept json
// @Produce json
// @Param resendRequest body handlers.ResendRequest true "Resend request"
// @Success 202 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "No pending registration"
// @Failure 429 {object} handlers.ErrorResponse "Too soon or too many resends"
// @Router /auth/local/resend [post]
func NewResendHandler(svc Resender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResendRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if _, err := svc.Resend(r.Context(), req.Email); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusAccepted, MessageResponse{Message: "verification email sent"})
	}
}
