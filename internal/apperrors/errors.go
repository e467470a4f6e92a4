// Package apperrors holds the closed set of error kinds shared by every layer.
// Lower layers wrap one of the sentinels with context; the HTTP layer resolves
// the kind once with Code.
package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	ErrNotFound           = errors.New("not found")
	ErrDatabase           = errors.New("database error")
	ErrHashing            = errors.New("hashing error")
	ErrInvalidToken       = errors.New("invalid token")
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("conflict")
	ErrUpload             = errors.New("upload error")
	ErrConfig             = errors.New("config error")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Machine readable codes returned in error bodies.
const (
	CodeNotFound           = "not_found"
	CodeDatabase           = "database_error"
	CodeHashing            = "hashing_error"
	CodeInvalidToken       = "invalid_token"
	CodeValidation         = "validation_error"
	CodeConflict           = "conflict"
	CodeUpload             = "upload_error"
	CodeConfig             = "config_error"
	CodeInvalidCredentials = "invalid_credentials"
	CodeRateLimited        = "rate_limited"
	CodeInternal           = "internal_error"
)

var kinds = []struct {
	err  error
	code string
}{
	{ErrNotFound, CodeNotFound},
	{ErrConflict, CodeConflict},
	{ErrValidation, CodeValidation},
	{ErrInvalidToken, CodeInvalidToken},
	{ErrInvalidCredentials, CodeInvalidCredentials},
	{ErrUpload, CodeUpload},
	{ErrHashing, CodeHashing},
	{ErrDatabase, CodeDatabase},
	{ErrConfig, CodeConfig},
}

// Code returns the code of the first kind found in err's chain,
// or CodeInternal when err carries none.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.code
		}
	}
	return CodeInternal
}

// Wrap annotates err with kind. It returns nil when err is nil.
func Wrap(kind error, err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", kind, msg, err)
}

// Validation builds a validation error carrying a user facing message.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Conflict builds a conflict error carrying a user facing message.
func Conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}
