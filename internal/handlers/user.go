package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"github.com/sbilibin2017/gw-app-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-app-catalog/internal/models"
)

// UserGetter returns users by id.
type UserGetter interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// NewGetCurrentUserHandler returns the user the bearer token was issued to.
// @Summary Current user
// @Description Returns the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} models.User "Authenticated user"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User no longer exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/users [get]
// @Security BearerAuth
func NewGetCurrentUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, apperrors.ErrInvalidToken)
			return
		}

		user, err := svc.GetUser(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
