// internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"net/http"

	"todohub/internal/shared"
)

// MessageResponse is the body of every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, MessageResponse{Message: message})
}

// respondWithAppError maps an error to its status code and client message.
// The underlying cause is never written to the response.
func respondWithAppError(w http.ResponseWriter, err error) {
	appErr := shared.AsAppError(err)
	respondWithError(w, appErr.Kind.Status(), appErr.Message)
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"message":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
