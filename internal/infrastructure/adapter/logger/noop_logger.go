package logger

import (
	"github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
)

// NoopLogger discards every entry. Tests and library callers that do not
// want client output use it; only the level is tracked.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger returns a Logger that writes nothing
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }

func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }

func (l *NoopLogger) Debug(string, map[string]any) {}

func (l *NoopLogger) Info(string, map[string]any) {}

func (l *NoopLogger) Warn(string, map[string]any) {}

func (l *NoopLogger) Error(string, map[string]any) {}

func (l *NoopLogger) Flush() error { return nil }
