package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-app-catalog/internal/models"
)

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: msg, Code: code})
}
