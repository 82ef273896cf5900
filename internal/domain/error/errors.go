package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized reporting
const (
	// 4xxx - Input errors
	CodeInvalidArgument = 4000
	CodeMissingField    = 4001
	CodeParse           = 4002
	CodeNotFound        = 4040

	// 5xxx - Environment errors
	CodeIO       = 5001
	CodeNetwork  = 5002
	CodeTimeout  = 5040
	CodeInternal = 5000
)

// CLI exit codes
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitInvalidArgument = 2
)

// Base error types
var (
	// ErrNotFound is returned when a payload file does not exist
	ErrNotFound = errors.New("not found")

	// ErrParse is returned when a file, field or response body cannot be parsed
	ErrParse = errors.New("parse error")

	// ErrIO is returned when writing or reading local storage fails
	ErrIO = errors.New("i/o error")

	// ErrMissingField is returned when a payload lacks a required field
	ErrMissingField = errors.New("missing field")

	// ErrNetwork is returned when the outbound request cannot be completed
	ErrNetwork = errors.New("network error")

	// ErrTimeout is returned when the outbound request exceeds its deadline
	ErrTimeout = errors.New("timeout")

	// ErrInvalidArgument is returned for an unsupported request type or bad input
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, ErrMissingField):
		return CodeMissingField
	case errors.Is(err, ErrParse):
		return CodeParse
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrIO):
		return CodeIO
	case errors.Is(err, ErrTimeout):
		return CodeTimeout
	case errors.Is(err, ErrNetwork):
		return CodeNetwork
	default:
		return CodeInternal
	}
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidArgument):
		return ExitInvalidArgument
	default:
		return ExitFailure
	}
}

// PayloadError represents a failure reading or writing a stored payload
type PayloadError struct {
	Kind string
	Path string
	Op   string
	Err  error
}

// Error implements the error interface for PayloadError
func (e *PayloadError) Error() string {
	return fmt.Sprintf("%s %s payload (%s): %v", e.Op, e.Kind, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PayloadError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PayloadError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "payload_error",
		"kind":       e.Kind,
		"path":       e.Path,
		"op":         e.Op,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewPayloadError creates a detailed payload storage error
func NewPayloadError(kind, path, op string, err error) error {
	return &PayloadError{Kind: kind, Path: path, Op: op, Err: err}
}

// FieldError represents a missing or malformed payload field
type FieldError struct {
	Kind  string
	Field string
	Value string
	Err   error
}

// Error implements the error interface for FieldError
func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s payload field %q: %v", e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("%s payload field %q (value %q): %v", e.Kind, e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error
func (e *FieldError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *FieldError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "field_error",
		"kind":       e.Kind,
		"field":      e.Field,
		"value":      e.Value,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewMissingFieldError creates an error for a field absent from a payload
func NewMissingFieldError(kind, field string) error {
	return &FieldError{Kind: kind, Field: field, Err: ErrMissingField}
}

// NewFieldParseError creates an error for a field whose value cannot be parsed
func NewFieldParseError(kind, field, value string) error {
	return &FieldError{Kind: kind, Field: field, Value: value, Err: ErrParse}
}

// GatewayError represents a failed outbound call to the payment provider
type GatewayError struct {
	URL string
	Err error
}

// Error implements the error interface for GatewayError
func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *GatewayError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "gateway_error",
		"url":        e.URL,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewGatewayError creates a gateway error wrapping cause under the sentinel kind
func NewGatewayError(url string, kind, cause error) error {
	if cause == nil {
		return &GatewayError{URL: url, Err: kind}
	}
	return &GatewayError{URL: url, Err: fmt.Errorf("%w: %v", kind, cause)}
}

// LogFielder is implemented by errors that carry structured context
type LogFielder interface {
	LogFields() map[string]any
}

// Fields returns structured logging fields for any error
func Fields(err error) map[string]any {
	var lf LogFielder
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidArgumentError checks if the error is an invalid argument error
func IsInvalidArgumentError(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsTimeoutError checks if the error is a timeout
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrTimeout)
}
