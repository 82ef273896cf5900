package sandbox

import (
	"net/http"
	"time"

	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	coreport "github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// RequestLogger middleware logs incoming requests and their responses
func RequestLogger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info("Request processed", map[string]any{
			"method":     method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		})
	}
}

// Recovery middleware recovers from panics and returns a 500 response
func Recovery(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in simulator request", map[string]any{
					"error":  err,
					"path":   c.Request.URL.Path,
					"method": c.Request.Method,
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Code:    errs.CodeInternal,
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
