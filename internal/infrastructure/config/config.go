package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	APIKey      string         `mapstructure:"apiKey"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Payloads    PayloadsConfig `mapstructure:"payloads"`
	Output      OutputConfig   `mapstructure:"output"`
	Gateway     GatewayConfig  `mapstructure:"gateway"`
	Journal     JournalConfig  `mapstructure:"journal"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// PayloadsConfig contains the paths of the request payload files
type PayloadsConfig struct {
	Deposit    string `mapstructure:"deposit"`
	Status     string `mapstructure:"status"`
	Withdrawal string `mapstructure:"withdrawal"`
}

// OutputConfig contains where provider responses are written
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// GatewayConfig contains payment provider endpoints and HTTP settings
type GatewayConfig struct {
	PaymentURL    string        `mapstructure:"paymentUrl"`
	StatusURL     string        `mapstructure:"statusUrl"`
	WithdrawalURL string        `mapstructure:"withdrawalUrl"`
	Timeout       time.Duration `mapstructure:"timeout"` // seconds
	MaxBodyBytes  int64         `mapstructure:"maxBodyBytes"`
	UserAgent     string        `mapstructure:"userAgent"`
}

// JournalConfig contains request journal settings
type JournalConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Database DatabaseConfig `mapstructure:"database"`
}

// DatabaseConfig contains journal database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	LogLevel        string        `mapstructure:"logLevel"`
}
