package password

import (
	"errors"

	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for new hashes.
var Cost = bcrypt.DefaultCost

// Hash returns a salted bcrypt hash of plain.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrHashing, err, "hash password")
	}
	return string(hashed), nil
}

// Verify reports whether plain matches hash.
// A malformed hash yields false and an error wrapping apperrors.ErrHashing.
func Verify(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, apperrors.Wrap(apperrors.ErrHashing, err, "verify password")
	}
}
