// filepath: internal/services/health_service.go
package services

import (
	"context"
	"time"

	"todohub/internal/models"
	"todohub/internal/probe"

	"github.com/sirupsen/logrus"
)

// --- Compile-time check to ensure interface is implemented ---
var _ HealthService = (*healthService)(nil)

// healthService manages the lifecycle of the background probe worker
// and answers on-demand health checks.
type healthService struct {
	Store  probe.StoreTX
	worker *probe.Service
}

// NewHealthService creates a new HealthService. An interval of zero disables
// the background probe; on-demand checks still work.
func NewHealthService(store probe.StoreTX, interval time.Duration, logger *logrus.Logger) *healthService {
	return &healthService{
		Store:  store,
		worker: probe.NewService(store, interval, logger),
	}
}

// Start begins the background probe worker.
func (s *healthService) Start() {
	s.worker.Start()
}

// Stop terminates the background probe worker.
func (s *healthService) Stop() {
	s.worker.Stop()
}

// Check pings the store now and attaches the last background probe result.
func (s *healthService) Check(ctx context.Context) models.HealthStatus {
	status := s.Store.Health(ctx)
	status.LastProbe = s.worker.Last()
	return status
}
