package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	"gorm.io/gorm"
)

// MapError maps a database error to a domain error, keeping the cause
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", errs.ErrNotFound, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", errs.ErrTimeout, err)
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "timeout"):
		return fmt.Errorf("%w: %v", errs.ErrTimeout, err)
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "no such host"):
		return fmt.Errorf("%w: %v", errs.ErrNetwork, err)
	default:
		return fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
}
