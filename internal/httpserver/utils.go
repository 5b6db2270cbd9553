package httpserver

import (
	"encoding/json"
	"net/http"

	"todohub/internal/logging"
)

// errorResponse matches the JSON structure used by the API handlers.
// Defined locally to avoid circular dependencies with the handlers package.
type errorResponse struct {
	Message string `json:"message"`
}

// respondWithError writes a JSON error response to ensure consistency with the API.
func respondWithError(w http.ResponseWriter, code int, message string) {
	body, err := json.Marshal(errorResponse{Message: message})
	if err != nil {
		logging.Log.Errorf("Failed to encode error response: %v", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	w.Write(body)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
