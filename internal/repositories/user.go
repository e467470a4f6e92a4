package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"github.com/sbilibin2017/gw-app-catalog/internal/models"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

const userColumns = `id, username, email, password, created_at, last_login_at, accepted_terms, is_admin`

// UserReadRepository handles user lookups.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	logQuery(query, []any{id}, user.Username, err)

	if err != nil {
		return nil, userLookupError(err, id.String())
	}
	return &user, nil
}

// GetByUsernameOrEmail returns the user whose username or email matches
// identifier case-insensitively. The password hash is included.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($1)
		LIMIT 1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, identifier)
	logQuery(query, []any{identifier}, user.ID, err)

	if err != nil {
		return nil, userLookupError(err, identifier)
	}
	return &user, nil
}

// ExistsByUsername reports whether a user with the given username exists.
func (r *UserReadRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(username) = LOWER($1))`, username)
}

// ExistsByEmail reports whether a user with the given email exists.
func (r *UserReadRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, email)
}

func (r *UserReadRepository) exists(ctx context.Context, query string, arg string) (bool, error) {
	var found bool
	err := r.db.GetContext(ctx, &found, query, arg)
	logQuery(query, []any{arg}, found, err)

	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrDatabase, err, "check user exists")
	}
	return found, nil
}

func userLookupError(err error, key string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: user %q", apperrors.ErrNotFound, key)
	}
	return apperrors.Wrap(apperrors.ErrDatabase, err, "get user")
}

// UserWriteRepository handles user inserts and updates.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored row.
// A clash with an existing username or email is reported as apperrors.ErrConflict.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string, terms bool) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password, accepted_terms)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username, email, passwordHash, terms)
	logQuery(query, []any{username, email, terms}, user.ID, err)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.Conflict(conflictMessage(pgErr.ConstraintName))
		}
		return nil, apperrors.Wrap(apperrors.ErrDatabase, err, "insert user")
	}
	return &user, nil
}

// UpdateLastLogin stamps the user's last successful login with the current time.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET last_login_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return apperrors.Wrap(apperrors.ErrDatabase, err, "update last login")
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: user %q", apperrors.ErrNotFound, id)
	}
	return nil
}

func conflictMessage(constraint string) string {
	switch constraint {
	case "users_username_lower_idx":
		return "username already taken"
	case "users_email_lower_idx":
		return "email already registered"
	default:
		return "username or email already exists"
	}
}
