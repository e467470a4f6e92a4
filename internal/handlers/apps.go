package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"github.com/sbilibin2017/gw-app-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-app-catalog/internal/models"
)

// DefaultUploadMaxBytes bounds a create app request body.
const DefaultUploadMaxBytes int64 = 10 << 20

// AppGetter returns a single app.
type AppGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.App, error)
}

// AppLister lists the apps of a user.
type AppLister interface {
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.App, error)
}

// AppCreator creates apps.
type AppCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, input models.NewApp, body *multipart.Reader) (*models.App, error)
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		badRequest(w, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// NewGetAppHandler returns an HTTP handler that fetches one app.
// @Summary Get app
// @Tags apps
// @Produce json
// @Param id path string true "App ID" format(uuid)
// @Success 200 {object} models.App
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 404 {object} models.ErrorResponse "App not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/apps/{id} [get]
func NewGetAppHandler(svc AppGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		app, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, app)
	}
}

// NewListUserAppsHandler returns an HTTP handler listing a user's apps, newest first.
// @Summary List apps of a user
// @Tags apps
// @Produce json
// @Param id path string true "User ID" format(uuid)
// @Success 200 {array} models.App
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/apps/user/{id} [get]
func NewListUserAppsHandler(svc AppLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		apps, err := svc.ListByOwner(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if apps == nil {
			apps = []models.App{}
		}

		writeJSON(w, http.StatusOK, apps)
	}
}

// NewCreateAppHandler returns an HTTP handler that creates an app owned by
// the authenticated user. The body is streamed; only the "image" part is kept.
// @Summary Create app
// @Tags apps
// @Accept mpfd
// @Produce json
// @Param name query string true "App name"
// @Param description query string false "App description"
// @Param github_url query string false "Repository URL"
// @Param image formData file false "App image"
// @Success 200 {object} models.App
// @Failure 400 {object} models.ErrorResponse "Invalid input or upload"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 413 {object} models.ErrorResponse "Upload too large"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/apps [post]
// @Security BearerAuth
func NewCreateAppHandler(svc AppCreator, maxBytes int64) http.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultUploadMaxBytes
	}

	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, apperrors.ErrInvalidToken)
			return
		}

		query := r.URL.Query()
		input := models.NewApp{
			Name:        query.Get("name"),
			Description: query.Get("description"),
			GithubURL:   query.Get("github_url"),
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		mr, err := r.MultipartReader()
		switch {
		case errors.Is(err, http.ErrNotMultipart) && r.ContentLength == 0:
			mr = nil
		case err != nil:
			badRequest(w, "expected a multipart/form-data body")
			return
		}

		app, err := svc.Create(r.Context(), claims.UserID, input, mr)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, app)
	}
}
