package common

import (
	"encoding/json"
	"net/http"

	"auto-pana/garaje/internal/logging"
)

// ErrorResponse is the uniform error envelope. Success payloads carry
// endpoint-specific fields at the top level, so handlers marshal their
// own structs through RespondJSON.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RespondJSON writes payload as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error("failed to encode response", "error", err)
	}
}

// RespondError writes the error envelope. The status code defaults to
// 500 when not given.
func RespondError(w http.ResponseWriter, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}
	RespondJSON(w, code, ErrorResponse{Success: false, Error: message})
}
