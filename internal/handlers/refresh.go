package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-identity/internal/models"
)

// Refresher rotates refresh tokens.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

// RefreshRequest represents the JSON body of a token refresh
// swagger:model RefreshRequest
type RefreshRequest struct {
	// required: true
	RefreshToken string `json:"refresh_token"`
}

// NewRefreshHandler returns an HTTP handler issuing a new token pair.
// @Summary Refresh tokens
// @Tags token
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh request"
// @Success 200 {object} models.TokenPair
// @Failure 401 {object} handlers.ErrorResponse "Invalid or expired refresh token"
// @Router /token/refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		pair, err := svc.Refresh(r.Context(), req.RefreshToken)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, pair)
	}
}
