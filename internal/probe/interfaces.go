// filepath: internal/probe/interfaces.go
package probe

import (
	"context"

	"todohub/internal/models"
)

// StoreTX is the store surface the probe needs. *repository.Pool satisfies it.
type StoreTX interface {
	Health(ctx context.Context) models.HealthStatus
}
