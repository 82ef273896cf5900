package sandbox

import (
	coreport "github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Endpoint paths served by the simulator
const (
	PaymentPath    = "/payment"
	StatusPath     = "/status"
	WithdrawalPath = "/withdrawal"
)

// NewRouter creates a gin engine serving the simulated provider
func NewRouter(handler *Handler, logger coreport.Logger) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, logger)
	SetupRoutes(router, handler)
	return router
}

// SetupRoutes configures the provider endpoints
func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET(PaymentPath, handler.Payment)
	router.GET(StatusPath, handler.Status)
	router.GET(WithdrawalPath, handler.Withdrawal)
}

// SetupMiddlewares configures global middlewares
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(Recovery(logger))
	router.Use(RequestLogger(logger))
}
