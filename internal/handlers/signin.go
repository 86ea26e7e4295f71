package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-identity/internal/models"
)

// LocalSignIner defines password sign-in.
type LocalSignIner interface {
	LocalSignIn(ctx context.Context, loginID, password string) (*models.Identity, error)
	IssueTokens(ctx context.Context, identity *models.Identity) (*models.TokenPair, error)
}

// SignInRequest represents the JSON body for password sign-in
// swagger:model SignInRequest
type SignInRequest struct {
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// required: true
	// default: Pw1!aaaa
	Password string `json:"password"`
}

// NewSignInHandler returns an HTTP handler for password sign-in.
// @Summary Sign in with email and password
// @Tags local
// @Accept json
// @Produce json
// @Param signInRequest body handlers.SignInRequest true "Sign-in request"
// @Success 200 {object} models.TokenPair
// @Failure 401 {object} handlers.ErrorResponse "Email or password incorrect"
// @Failure 403 {object} handlers.ErrorResponse "Local sign-in disabled"
// @Router /auth/local/signin [post]
func NewSignInHandler(svc LocalSignIner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		identity, err := svc.LocalSignIn(r.Context(), req.Email, req.Password)
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
