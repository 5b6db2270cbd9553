// filepath: internal/probe/service.go
package probe

import (
	"context"
	"sync"
	"time"

	"todohub/internal/models"

	"github.com/sirupsen/logrus"
)

const (
	// MinInterval is the minimum time between probes to prevent busy-looping.
	MinInterval = 1 * time.Second
	// probeTimeout bounds a single probe round trip.
	probeTimeout = 5 * time.Second
)

// Service is the background worker that periodically pings the store and
// keeps the most recent result for the health endpoint.
type Service struct {
	Store    StoreTX
	Interval time.Duration
	Logger   *logrus.Logger

	mu       sync.RWMutex
	last     *models.ProbeResult
	timer    *time.Timer
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewService creates a new probe worker. An interval of zero disables the loop,
// Start then returns without scheduling anything.
func NewService(store StoreTX, interval time.Duration, logger *logrus.Logger) *Service {
	if interval > 0 && interval < MinInterval {
		interval = MinInterval
	}
	return &Service{
		Store:    store,
		Interval: interval,
		Logger:   logger,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start kicks off the background probe loop.
func (s *Service) Start() {
	if s.Interval == 0 {
		s.Logger.Info("Background store probe disabled.")
		close(s.done)
		return
	}

	s.Logger.WithField("interval", s.Interval.String()).Info("Starting background store probe.")
	s.timer = time.NewTimer(0) // Fire immediately on start

	go func() {
		defer close(s.done)
		for {
			select {
			case <-s.timer.C:
				s.RunOnce(context.Background())
				s.timer.Reset(s.Interval)
			case <-s.stopCh:
				s.timer.Stop()
				return
			}
		}
	}()
}

// Stop terminates the probe loop and waits for it to exit.
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		s.Logger.Info("Stopping background store probe.")
		close(s.stopCh)
	})
	<-s.done
}

// RunOnce performs a single probe and records its result.
func (s *Service) RunOnce(ctx context.Context) models.ProbeResult {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	health := s.Store.Health(ctx)
	result := models.ProbeResult{
		CheckedAt: time.Now().UTC(),
		Latency:   health.Latency,
		Error:     health.Error,
	}

	entry := s.Logger.WithFields(logrus.Fields{
		"latency": health.Latency.String(),
		"in_use":  health.PoolStats.InUse,
		"open":    health.PoolStats.OpenConnections,
	})
	switch {
	case !health.Healthy:
		entry.WithField("cause", health.Error).Error("Store probe failed")
	case health.PoolStats.MaxOpenConnections > 0 && health.PoolStats.InUse >= health.PoolStats.MaxOpenConnections:
		entry.Warn("Store connection pool saturated")
	default:
		entry.Debug("Store probe ok")
	}

	s.mu.Lock()
	s.last = &result
	s.mu.Unlock()
	return result
}

// Last returns the most recent probe result, or nil before the first probe.
func (s *Service) Last() *models.ProbeResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil
	}
	result := *s.last
	return &result
}
