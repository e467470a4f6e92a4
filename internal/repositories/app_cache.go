package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-app-catalog/internal/logger"
	"github.com/sbilibin2017/gw-app-catalog/internal/models"
)

// ErrCacheMiss is returned when an app is not present in the cache.
var ErrCacheMiss = errors.New("app not found in cache")

// AppCacheRepository keeps recently read apps in Redis.
type AppCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached apps
}

// NewAppCacheRepository creates a new repository instance with the given TTL.
func NewAppCacheRepository(client *redis.Client, expiration time.Duration) *AppCacheRepository {
	return &AppCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func appCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("app:%s", id)
}

// Get returns the cached app or ErrCacheMiss.
func (r *AppCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.App, error) {
	key := appCacheKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Debugw("cache get", "key", key, "hit", err == nil, "error", err)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var app models.App
	if err := json.Unmarshal(val, &app); err != nil {
		return nil, fmt.Errorf("decode cached app %s: %w", key, err)
	}
	return &app, nil
}

// Set stores app with the repository TTL.
func (r *AppCacheRepository) Set(ctx context.Context, app *models.App) error {
	key := appCacheKey(app.ID)

	data, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("encode app %s: %w", key, err)
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", key, "ttl", r.exp, "error", err)

	return err
}
