package models

import (
	"time"

	"github.com/google/uuid"
)

// App represents a catalog entry owned by a user.
type App struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	GithubURL   *string   `json:"github_url" db:"github_url"`
	ImageName   string    `json:"image_name" db:"image_name"` // File name under the app image directory, empty when none
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
	IsActive    bool      `json:"is_active" db:"is_active"`
}

// NewApp holds the user supplied fields of an app being created.
type NewApp struct {
	Name        string
	Description string
	GithubURL   string
}
