// filepath: internal/services/info_service.go
package services

import (
	"time"

	"todohub/internal/models"
)

var _ InfoService = (*infoService)(nil)

type infoService struct {
	Version   string
	StartTime time.Time
	Driver    string
}

// NewInfoService creates a new InfoService.
func NewInfoService(version string, startTime time.Time, driver string) *infoService {
	return &infoService{
		Version:   version,
		StartTime: startTime,
		Driver:    driver,
	}
}

// GetInfo retrieves the application information.
func (s *infoService) GetInfo() models.Info {
	return models.Info{
		ServiceName: "TodoHub-API",
		Version:     s.Version,
		UptimeSince: s.StartTime,
		Driver:      s.Driver,
	}
}
