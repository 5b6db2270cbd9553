// filepath: internal/audit/logger_auditor.go
package audit

import (
	"context"

	"todohub/internal/httpserver/requestid"
	"todohub/internal/services"

	"github.com/sirupsen/logrus"
)

// Ensure LoggerAuditor implements services.Auditor
var _ services.Auditor = (*LoggerAuditor)(nil)

// LoggerAuditor writes audit events to the application log.
type LoggerAuditor struct {
	enabled bool
	logger  *logrus.Logger
}

// NewLoggerAuditor creates a new instance of LoggerAuditor.
func NewLoggerAuditor(enabled bool, logger *logrus.Logger) *LoggerAuditor {
	return &LoggerAuditor{enabled: enabled, logger: logger}
}

// Log records an event using logrus if auditing is enabled.
func (a *LoggerAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	if !a.enabled {
		return
	}

	fields := logrus.Fields{
		"audit_action":   action,
		"audit_actor":    actor,
		"audit_resource": resource,
	}
	if id := requestid.FromContext(ctx); id != "" {
		fields["request_id"] = id
	}

	for k, v := range details {
		fields["detail."+k] = v
	}

	a.logger.WithFields(fields).Info("AUDIT EVENT")
}
