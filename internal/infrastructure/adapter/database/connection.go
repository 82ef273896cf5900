package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connection holds database connection and configuration
type Connection struct {
	DB     *gorm.DB
	Config *Config
}

// NewConnection establishes a new database connection with the given configuration
func NewConnection(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(logger, timeProvider, config.LogLevel),
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", MapError(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", MapError(err))
	}

	return &Connection{
		DB:     db,
		Config: config,
	}, nil
}

// AutoMigrate creates or updates the tables for the given models
func (c *Connection) AutoMigrate(models ...any) error {
	if err := c.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", MapError(err))
	}
	return nil
}

// Close closes the database connection
func (c *Connection) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
