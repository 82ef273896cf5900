package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/sandbox"
	"github.com/gin-gonic/gin"
)

// Runs a local payment provider simulator for manual testing of the client
func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	appLogger := logger.NewZapLogger(false)
	defer func() { _ = appLogger.Flush() }()

	secret := os.Getenv("PSP_API_KEY")
	if secret == "" {
		appLogger.Error("PSP_API_KEY must be set to verify signatures", nil)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	router := sandbox.NewRouter(sandbox.NewHandler(secret, appLogger), appLogger)

	server := &http.Server{
		Addr:              *addr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		appLogger.Info("Starting simulator", map[string]any{
			"addr": *addr,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start simulator", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down simulator...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Simulator forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}
}
