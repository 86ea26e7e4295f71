package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-identity/internal/models"
)

// IssueCodeRedeemer exchanges one-time codes for tokens.
type IssueCodeRedeemer interface {
	RedeemIssueCode(ctx context.Context, code string) (*models.Identity, error)
	IssueTokens(ctx context.Context, identity *models.Identity) (*models.TokenPair, error)
}

// NewIssueHandler returns an HTTP handler redeeming an issue code.
// @Summary Redeem issue code
// @Tags oauth
// @Produce json
// @Param code query string true "One-time issue code"
// @Success 200 {object} models.TokenPair
// @Failure 404 {object} handlers.ErrorResponse "Unknown or used code"
// @Router /issue [get]
func NewIssueHandler(svc IssueCodeRedeemer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "code is required"})
			return
		}

		identity, err := svc.RedeemIssueCode(r.Context(), code)
		if err != nil {
			writeError(w, r, err)
			return
		}

		pair, err := svc.IssueTokens(r.Context(), identity)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, pair)
	}
}
