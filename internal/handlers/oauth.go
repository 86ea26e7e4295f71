package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/sbilibin2017/gw-identity/internal/services"
)

// AuthorizationURLer builds provider consent URLs.
type AuthorizationURLer interface {
	AuthorizationURL(provider models.Provider, state string) (string, error)
}

// OAuthCallbackSignIner signs in with an authorization code and hands out a
// one-time issue code.
type OAuthCallbackSignIner interface {
	OAuthSignIn(ctx context.Context, provider models.Provider, code string) (*models.Identity, error)
	IssueCode(ctx context.Context, userUUID uuid.UUID) (string, error)
}

// OAuthTokenSignIner signs in with a provider access token.
type OAuthTokenSignIner interface {
	OAuthSignInWithToken(ctx context.Context, provider models.Provider, accessToken string) (*models.Identity, error)
	IssueTokens(ctx context.Context, identity *models.Identity) (*models.TokenPair, error)
}

// AuthorizationURLResponse carries the provider consent URL
// swagger:model AuthorizationURLResponse
type AuthorizationURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// IssueCodeResponse carries a one-time code redeemable at /issue
// swagger:model IssueCodeResponse
type IssueCodeResponse struct {
	Code string `json:"code"`
}

// OAuthTokenRequest represents the JSON body of a native client sign-in
// swagger:model OAuthTokenRequest
type OAuthTokenRequest struct {
	// Provider access token
	// required: true
	AccessToken string `json:"access_token"`
}

func providerParam(w http.ResponseWriter, r *http.Request) (models.Provider, bool) {
	provider, err := models.ParseProvider(chi.URLParam(r, "provider"))
	if err != nil {
		writeError(w, r, services.ErrUnsupportedProvider)
		return "", false
	}
	return provider, true
}

// NewAuthorizationURLHandler returns an HTTP handler answering with the
// consent URL of a provider. A state is generated when the caller sends none
// and is bound to the browser with a short-lived cookie.
// @Summary Provider authorization URL
// @Tags oauth
// @Produce json
// @Param provider path string true "google, kakao or naver"
// @Param state query string false "Opaque state echoed back by the provider"
// @Success 200 {object} handlers.AuthorizationURLResponse
// @Failure 404 {object} handlers.ErrorResponse "Unsupported provider"
// @Router /auth/oauth/{provider}/url [get]
func NewAuthorizationURLHandler(svc AuthorizationURLer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider, ok := providerParam(w, r)
		if !ok {
			return
		}

		state := r.URL.Query().Get("state")
		if state == "" {
			state = uuid.NewString()
		}

		url, err := svc.AuthorizationURL(provider, state)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeStateCookie(w, r, state)

		writeJSON(w, http.StatusOK, AuthorizationURLResponse{URL: url, State: state})
	}
}

// NewOAuthCallbackHandler returns an HTTP handler for the provider redirect.
// The state must equal the one bound to the browser by the authorization URL
// handler. It answers with a one-time issue code rather than tokens.
// @Summary Provider callback
// @Tags oauth
// @Produce json
// @Param provider path string true "google, kakao or naver"
// @Param code query string true "Authorization code"
// @Param state query string true "State returned by the authorization URL"
// @Success 200 {object} handlers.IssueCodeResponse
// @Failure 400 {object} handlers.ErrorResponse "Provider email not verified or state mismatch"
// @Failure 404 {object} handlers.ErrorResponse "Unsupported provider"
// @Failure 409 {object} handlers.ErrorResponse "Email belongs to another account"
// @Failure 502 {object} handlers.ErrorResponse "Provider unavailable"
// @Router /auth/oauth/{provider}/callback [get]
func NewOAuthCallbackHandler(svc OAuthCallbackSignIner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider, ok := providerParam(w, r)
		if !ok {
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "code is required"})
			return
		}

		matched := stateMatches(r)
		clearStateCookie(w, r)
		if !matched {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "oauth state mismatch"})
			return
		}

		identity, err := svc.OAuthSignIn(r.Context(), provider, code)
		if err != nil {
			writeError(w, r, err)
			return
		}

		issueCode, err := svc.IssueCode(r.Context(), identity.UUID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, IssueCodeResponse{Code: issueCode})
	}
}

// NewOAuthTokenHandler returns an HTTP handler for native clients that
// already hold a provider access token.
// @Summary Sign in with a provider access token
// @Tags oauth
// @Accept json
// @Produce json
// @Param provider path string true "google, kakao or naver"
// @Param oauthTokenRequest body handlers.OAuthTokenRequest true "Provider access token"
// @Success 200 {object} models.TokenPair
// @Failure 400 {object} handlers.ErrorResponse "Provider email not verified"
// @Failure 404 {object} handlers.ErrorResponse "Unsupported provider"
// @Failure 502 {object} handlers.ErrorResponse "Provider unavailable"
// @Router /auth/oauth/{provider}/token [post]
func NewOAuthTokenHandler(svc OAuthTokenSignIner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider, ok := providerParam(w, r)
		if !ok {
			return
		}

		var req OAuthTokenRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.AccessToken == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "access_token is required"})
			return
		}

		identity, err := svc.OAuthSignInWithToken(r.Context(), provider, req.AccessToken)
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
