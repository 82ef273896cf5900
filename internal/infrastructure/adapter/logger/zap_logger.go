package logger

import (
	"strings"

	"github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger creates a new zap-based logger instance.
// Logs go to stderr so stdout stays reserved for command output.
func NewZapLogger(isProduction bool) core.Logger {
	var cfg zap.Config

	if isProduction {
		// JSON encoder for structured logging
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		// Console encoder for easier reading
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	zapLogger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return &ZapLogger{
		logger: zapLogger,
		level:  cfg.Level,
	}
}

// NewDefaultLogger creates a standard logger for the application
func NewDefaultLogger() core.Logger {
	return NewZapLogger(false)
}

// ParseLevel converts a configured level name to a LogLevel, defaulting to info
func ParseLevel(level string) core.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return core.LogLevelDebug
	case "warn", "warning":
		return core.LogLevelWarn
	case "error":
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	switch level {
	case core.LogLevelDebug:
		l.level.SetLevel(zap.DebugLevel)
	case core.LogLevelWarn:
		l.level.SetLevel(zap.WarnLevel)
	case core.LogLevelError:
		l.level.SetLevel(zap.ErrorLevel)
	default:
		l.level.SetLevel(zap.InfoLevel)
	}
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	switch l.level.Level() {
	case zap.DebugLevel:
		return core.LogLevelDebug
	case zap.WarnLevel:
		return core.LogLevelWarn
	case zap.ErrorLevel:
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
