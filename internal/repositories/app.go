package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"github.com/sbilibin2017/gw-app-catalog/internal/models"
)

const appColumns = `apps.id, apps.name, apps.description, apps.github_url, apps.image_name,
	apps.user_id, apps.created_at, apps.updated_at, apps.is_active`

// AppReadRepository handles catalog entry lookups.
type AppReadRepository struct {
	db *sqlx.DB
}

func NewAppReadRepository(db *sqlx.DB) *AppReadRepository {
	return &AppReadRepository{db: db}
}

// GetByID returns the app with the given id.
func (r *AppReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.App, error) {
	query := `SELECT ` + appColumns + ` FROM apps WHERE apps.id = $1`

	var app models.App
	err := r.db.GetContext(ctx, &app, query, id)
	logQuery(query, []any{id}, app.Name, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: app %q", apperrors.ErrNotFound, id)
		}
		return nil, apperrors.Wrap(apperrors.ErrDatabase, err, "get app")
	}
	return &app, nil
}

// GetByUserID returns the apps owned by userID, newest first.
func (r *AppReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.App, error) {
	query := `
		SELECT ` + appColumns + `
		FROM apps
		JOIN users ON apps.user_id = users.id
		WHERE users.id = $1
		ORDER BY apps.created_at DESC
	`

	apps := []models.App{}
	err := r.db.SelectContext(ctx, &apps, query, userID)
	logQuery(query, []any{userID}, len(apps), err)

	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabase, err, "list apps by user")
	}
	return apps, nil
}

// AppWriteRepository handles catalog entry inserts.
type AppWriteRepository struct {
	db *sqlx.DB
}

func NewAppWriteRepository(db *sqlx.DB) *AppWriteRepository {
	return &AppWriteRepository{db: db}
}

// Save inserts a new app owned by ownerID and returns the stored row.
func (r *AppWriteRepository) Save(
	ctx context.Context,
	name, description string,
	githubURL *string,
	imageName string,
	ownerID uuid.UUID,
) (*models.App, error) {
	query := `
		INSERT INTO apps (name, description, github_url, image_name, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + appColumns
	args := []any{name, description, githubURL, imageName, ownerID}

	var app models.App
	err := r.db.GetContext(ctx, &app, query, args...)
	logQuery(query, args, app.ID, err)

	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabase, err, "insert app")
	}
	return &app, nil
}
