package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-identity/internal/middlewares"
)

// UserDeleter deletes users.
type UserDeleter interface {
	DeleteUser(ctx context.Context, userUUID uuid.UUID) error
}

// NewDeleteUserHandler returns an HTTP handler deleting the authenticated user.
// @Summary Delete own account
// @Tags users
// @Security BearerAuth
// @Success 204
// @Failure 401 "Missing or invalid access token"
// @Failure 404 {object} handlers.ErrorResponse "User already deleted"
// @Router /users/me [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if err := svc.DeleteUser(r.Context(), identity.UUID); err != nil {
			writeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
