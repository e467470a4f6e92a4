package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"github.com/sbilibin2017/gw-app-catalog/internal/logger"
	"github.com/sbilibin2017/gw-app-catalog/internal/models"
	"github.com/sbilibin2017/gw-app-catalog/internal/password"
	"github.com/sbilibin2017/gw-app-catalog/internal/validation"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string, terms bool) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, username string, userID uuid.UUID) (string, error)
}

// AuthService handles registration, login and profile lookups.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	events eventPublisher
}

// NewAuthService creates a new AuthService instance.
// kafkaWriter may be nil.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, kafkaWriter KafkaWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		events: newEventPublisher(kafkaWriter),
	}
}

// Register validates the input and creates a new user.
//
// The existence checks only produce friendlier messages; two concurrent
// registrations can both pass them, and the loser is then rejected by the
// unique index and reported as apperrors.ErrConflict as well.
func (svc *AuthService) Register(ctx context.Context, username, email, plainPassword string, terms bool) (*models.User, error) {
	switch {
	case !validation.ValidUsername(username):
		return nil, apperrors.Validation(`username must be 3-20 characters and must not contain '@', '\' or '/'`)
	case !validation.ValidEmail(email):
		return nil, apperrors.Validation("email is not valid")
	case !validation.ValidPassword(plainPassword):
		return nil, apperrors.Validation("password must be 8-72 bytes long")
	}

	taken, err := svc.reader.ExistsByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username exists", "err", err)
		return nil, err
	}
	if taken {
		logger.Log.Infow("username already taken", "username", username)
		return nil, apperrors.Conflict("username already taken")
	}

	taken, err = svc.reader.ExistsByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "err", err)
		return nil, err
	}
	if taken {
		logger.Log.Infow("email already registered", "email", email)
		return nil, apperrors.Conflict("email already registered")
	}

	hashedPassword, err := password.Hash(plainPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, email, hashedPassword, terms)
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, err
	}

	svc.events.publish(ctx, models.EventUserRegistered, user.ID, user)

	return user, nil
}

// Login authenticates a user by username or email and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, identifier, plainPassword string) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Log.Errorw("failed to get user", "err", err)
		}
		return "", err
	}

	ok, err := password.Verify(plainPassword, user.PasswordHash)
	if err != nil {
		logger.Log.Errorw("password verification failed", "user_id", user.ID, "err", err)
		return "", fmt.Errorf("%w: %w", apperrors.ErrInvalidCredentials, err)
	}
	if !ok {
		logger.Log.Infow("invalid credentials", "user_id", user.ID)
		return "", apperrors.ErrInvalidCredentials
	}

	if err := svc.writer.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Log.Warnw("failed to update last login", "user_id", user.ID, "err", err)
	}

	token, err := svc.jwt.Generate(ctx, user.Username, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// GetUser returns the user with the given id.
func (svc *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		}
		return nil, err
	}
	return user, nil
}
