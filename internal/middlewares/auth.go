package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mocks.go -package=middlewares

// Tokener extracts and verifies access tokens.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	VerifyAccess(ctx context.Context, token string) (*models.AccessTokenPayload, error)
}

type identityKey struct{}

// WithIdentity stores the authenticated identity in ctx.
func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity stored by AuthMiddleware.
func IdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*models.Identity)
	return identity, ok && identity != nil
}

// AuthMiddleware rejects requests without a valid bearer access token and
// passes the token's identity downstream.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "request_id", RequestIDFromContext(ctx), "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			payload, err := tokener.VerifyAccess(ctx, token)
			if err != nil {
				logger.Log.Warnw("authorization failed", "request_id", RequestIDFromContext(ctx), "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = WithIdentity(ctx, &models.Identity{UUID: payload.UUID, Role: payload.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
