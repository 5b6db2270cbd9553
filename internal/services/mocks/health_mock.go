// filepath: internal/services/mocks/health_mock.go
package mocks

import (
	"context"

	"todohub/internal/models"
	"todohub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockHealthService is a mock implementation of services.HealthService
type MockHealthService struct {
	mock.Mock
}

var _ services.HealthService = (*MockHealthService)(nil)

func (m *MockHealthService) Start() {
	m.Called()
}

func (m *MockHealthService) Stop() {
	m.Called()
}

func (m *MockHealthService) Check(ctx context.Context) models.HealthStatus {
	args := m.Called(ctx)
	return args.Get(0).(models.HealthStatus)
}
