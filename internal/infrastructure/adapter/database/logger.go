package database

import (
	"context"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
	"gorm.io/gorm/logger"
)

// DatabaseLogger is a GORM logger that writes through the core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLogger creates a new database logger
func NewDatabaseLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string) logger.Interface {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      parseLogLevel(level),
		slowThreshold: time.Duration(200 * coreport.Millisecond),
		timeProvider:  timeProvider,
	}
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(msg, map[string]any{"source": "database"})
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(msg, map[string]any{"source": "database"})
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(msg, map[string]any{"source": "database"})
	}
}

// Trace logs SQL statements
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := l.timeProvider.Since(begin).Std()
	sql, rows := fc()

	fields := map[string]any{
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     sql,
		"source":  "database",
	}
	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	switch {
	case err != nil && l.logLevel >= logger.Error:
		l.coreLogger.Error("SQL Error", fields)
	case elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL Query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL Query", fields)
	}
}

// extractQueryType determines the statement type of a SQL query
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))
	for _, prefix := range []string{"SELECT", "INSERT", "UPDATE", "DELETE", "CREATE", "ALTER"} {
		if strings.HasPrefix(sqlUpper, prefix) {
			return prefix
		}
	}
	return ""
}
