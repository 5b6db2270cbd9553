// filepath: internal/api/handlers/status_handler.go
package handlers

import (
	"net/http"

	"todohub/internal/models"
)

// @Summary Liveness check
// @Description Confirms the HTTP server is running. Does not touch the store.
// @Tags Info
// @Produce  json
// @Success 200 {object} models.Status
// @Router / [get]
func (h *Handlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, models.Status{Status: "Ok"})
}

// @Summary Store health
// @Description Pings the store through the pool and reports pool counters and the last background probe.
// @Tags Info
// @Produce  json
// @Success 200 {object} models.HealthStatus
// @Failure 503 {object} models.HealthStatus
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := h.Health.Check(r.Context())
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	respondWithJSON(w, code, status)
}

// @Summary Get service information
// @Description Retrieves general information about the service: name, version, start time and store driver.
// @Tags Info
// @Produce  json
// @Success 200 {object} models.Info
// @Router /info [get]
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	info := h.Info.GetInfo()
	respondWithJSON(w, http.StatusOK, info)
}
