// filepath: internal/api/handlers/main.go
package handlers

import (
	"todohub/internal/config"
	"todohub/internal/services"

	"github.com/sirupsen/logrus"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	// --- Depend on interfaces, not concrete structs ---
	Info    services.InfoService
	Todo    services.TodoService
	Health  services.HealthService
	Auditor services.Auditor

	Cfg    *config.Config
	Logger *logrus.Logger
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	todo services.TodoService,
	health services.HealthService,
	auditor services.Auditor,
	cfg *config.Config,
	logger *logrus.Logger,
) *Handlers {
	return &Handlers{
		Info:    info,
		Todo:    todo,
		Health:  health,
		Auditor: auditor,
		Cfg:     cfg,
		Logger:  logger,
	}
}

// strictValidation reports whether request validation is on. Without a
// config the safe default applies.
func (h *Handlers) strictValidation() bool {
	return h.Cfg == nil || h.Cfg.IsStrictValidation()
}
