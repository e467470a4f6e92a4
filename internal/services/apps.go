package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"github.com/sbilibin2017/gw-app-catalog/internal/logger"
	"github.com/sbilibin2017/gw-app-catalog/internal/models"
	"github.com/sbilibin2017/gw-app-catalog/internal/validation"
)

// AppImageCategory is the directory app images are stored in.
const AppImageCategory = "app"

const appNameMaxLen = 255

// AppReader defines read-only operations for apps.
type AppReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.App, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.App, error)
}

// AppWriter defines write operations for apps.
type AppWriter interface {
	Save(ctx context.Context, name, description string, githubURL *string, imageName string, ownerID uuid.UUID) (*models.App, error)
}

// AppCache caches apps by id.
type AppCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.App, error)
	Set(ctx context.Context, app *models.App) error
}

// ImageSaver stores uploaded images.
type ImageSaver interface {
	SaveStream(ctx context.Context, body *multipart.Reader, category string) (string, error)
	Remove(category, name string) error
}

// AppService handles the app catalog.
type AppService struct {
	reader AppReader
	writer AppWriter
	cache  AppCache
	images ImageSaver
	events eventPublisher
}

// NewAppService creates a new AppService instance.
// cache and kafkaWriter may be nil.
func NewAppService(reader AppReader, writer AppWriter, cache AppCache, images ImageSaver, kafkaWriter KafkaWriter) *AppService {
	return &AppService{
		reader: reader,
		writer: writer,
		cache:  cache,
		images: images,
		events: newEventPublisher(kafkaWriter),
	}
}

// Get returns the app with the given id, trying the cache first.
func (svc *AppService) Get(ctx context.Context, id uuid.UUID) (*models.App, error) {
	if svc.cache != nil {
		app, err := svc.cache.Get(ctx, id)
		if err == nil {
			return app, nil
		}
		logger.Log.Debugw("app cache lookup failed", "app_id", id, "err", err)
	}

	app, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Log.Errorw("failed to get app", "app_id", id, "err", err)
		}
		return nil, err
	}

	svc.warmCache(ctx, app)
	return app, nil
}

// ListByOwner returns the apps of a user, newest first.
func (svc *AppService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.App, error) {
	apps, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list apps", "user_id", userID, "err", err)
		return nil, err
	}
	return apps, nil
}

// Create stores the optional image carried by body and records the app for
// ownerID. If the record cannot be saved the image is removed again.
func (svc *AppService) Create(ctx context.Context, ownerID uuid.UUID, input models.NewApp, body *multipart.Reader) (*models.App, error) {
	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		return nil, apperrors.Validation("name is required")
	case utf8.RuneCountInString(name) > appNameMaxLen:
		return nil, apperrors.Validation("name must be at most 255 characters")
	case !validation.ValidGithubURL(input.GithubURL):
		return nil, apperrors.Validation("github_url must be an absolute http(s) URL of at most 255 characters")
	}

	var imageName string
	if body != nil {
		var err error
		imageName, err = svc.images.SaveStream(ctx, body, AppImageCategory)
		if err != nil {
			logger.Log.Warnw("failed to store app image", "user_id", ownerID, "err", err)
			return nil, err
		}
	}

	var githubURL *string
	if input.GithubURL != "" {
		githubURL = &input.GithubURL
	}

	app, err := svc.writer.Save(ctx, name, input.Description, githubURL, imageName, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to save app", "user_id", ownerID, "err", err)
		if rmErr := svc.images.Remove(AppImageCategory, imageName); rmErr != nil {
			logger.Log.Errorw("failed to remove orphaned image", "file", imageName, "err", rmErr)
		}
		return nil, err
	}

	svc.events.publish(ctx, models.EventAppCreated, ownerID, app)
	svc.warmCache(ctx, app)

	return app, nil
}

func (svc *AppService) warmCache(ctx context.Context, app *models.App) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Set(ctx, app); err != nil {
		logger.Log.Warnw("failed to cache app", "app_id", app.ID, "err", err)
	}
}
