package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"github.com/sbilibin2017/gw-app-catalog/internal/logger"
	"github.com/sbilibin2017/gw-app-catalog/internal/models"
)

var codeStatus = map[string]int{
	apperrors.CodeNotFound:           http.StatusNotFound,
	apperrors.CodeValidation:         http.StatusBadRequest,
	apperrors.CodeConflict:           http.StatusConflict,
	apperrors.CodeInvalidToken:       http.StatusUnauthorized,
	apperrors.CodeInvalidCredentials: http.StatusUnauthorized,
	apperrors.CodeUpload:             http.StatusBadRequest,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Warnw("failed to write response", "err", err)
	}
}

// writeError maps err to a status code and error envelope. Server side
// failures are logged and answered with a generic message.
func writeError(w http.ResponseWriter, err error) {
	code := apperrors.Code(err)
	status, ok := codeStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	var msg string
	switch code {
	case apperrors.CodeValidation:
		msg = detail(err, apperrors.ErrValidation)
	case apperrors.CodeConflict:
		msg = detail(err, apperrors.ErrConflict)
	case apperrors.CodeNotFound:
		msg = "not found"
	case apperrors.CodeInvalidToken:
		msg = "invalid or expired token"
	case apperrors.CodeInvalidCredentials:
		msg = "invalid password"
	case apperrors.CodeUpload:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
			msg = "upload too large"
		} else {
			msg = "invalid upload"
		}
	default:
		logger.Log.Errorw("internal server error", "err", err)
		if code == apperrors.CodeConfig {
			code = apperrors.CodeInternal
		}
		msg = "internal server error"
	}

	writeJSON(w, status, models.ErrorResponse{Error: msg, Code: code})
}

// detail strips the kind prefix added by apperrors.
func detail(err error, kind error) string {
	return strings.TrimPrefix(err.Error(), kind.Error()+": ")
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msg, Code: apperrors.CodeValidation})
}
