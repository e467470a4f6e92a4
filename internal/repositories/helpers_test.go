package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-app-catalog/internal/models"
)

func newTestApp() *models.App {
	github := "https://github.com/alice/demo"
	now := time.Now().UTC().Truncate(time.Second)
	return &models.App{
		ID:          uuid.New(),
		Name:        "demo",
		Description: "demo app",
		GithubURL:   &github,
		ImageName:   "x.png",
		UserID:      uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		IsActive:    true,
	}
}
