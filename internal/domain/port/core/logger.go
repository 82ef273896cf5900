package core

// LogLevel orders log severities from most to least verbose
type LogLevel int

const (
	LogLevelDebug LogLevel = iota // payload and query-string dumps
	LogLevelInfo                  // one line per request step
	LogLevelWarn                  // degraded but completed, e.g. journal write failed
	LogLevelError                 // the request failed
)

// Logger is the structured logging port. Fields are attached as key/value pairs.
// Implementations must never receive the shared secret in a field.
type Logger interface {
	SetLevel(level LogLevel)
	GetLevel() LogLevel

	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)

	// Flush writes out buffered entries; call it before the process exits
	Flush() error
}
