package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Verifier defines the email verification operation.
type Verifier interface {
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

// VerifyResponse carries the id of the promoted user
// swagger:model VerifyResponse
type VerifyResponse struct {
	UUID uuid.UUID `json:"uuid"`
}

// NewVerifyHandler returns an HTTP handler completing a registration from
// the emailed link.
// @Summary Confirm email
// @Tags local
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} handlers.VerifyResponse
// @Failure 400 {object} handlers.ErrorResponse "Stale code or malformed token"
// @Failure 401 {object} handlers.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} handlers.ErrorResponse "No pending registration"
// @Failure 409 {object} handlers.ErrorResponse "Already verified"
// @Router /auth/local/verify [get]
func NewVerifyHandler(svc Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "token is required"})
			return
		}

		id, err := svc.Verify(r.Context(), token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, VerifyResponse{UUID: id})
	}
}
