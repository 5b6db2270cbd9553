// internal/logging/logging.go
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger used for lifecycle messages.
// Components that serve requests receive their logger explicitly.
var Log = NewLogger("info")

// Init replaces the process-wide logger with one at the given level.
func Init(level string) {
	Log = NewLogger(level)
}

// NewLogger creates a JSON logger writing to stdout at the given level.
func NewLogger(level string) *logrus.Logger {
	return NewLoggerWithOutput(level, os.Stdout)
}

// NewLoggerWithOutput creates a JSON logger writing to out.
func NewLoggerWithOutput(level string, out io.Writer) *logrus.Logger {
	var log = logrus.New()

	// Using JSON format for structured logging.
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(out)
	log.SetLevel(ParseLevel(level))

	return log
}

// ParseLevel maps a config level string to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// IsValidLevel reports whether level is one of the accepted names.
func IsValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}
