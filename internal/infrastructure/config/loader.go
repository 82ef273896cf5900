package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment variable the client reads
const EnvPrefix = "PSP"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment.
// A missing config file is not an error; defaults and environment variables still apply.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Process environment variable overrides for sensitive values
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found. Existing variables are not overwritten.
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
	return nil
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")

	v.SetDefault("payloads.deposit", "payloads/deposit.json")
	v.SetDefault("payloads.status", "payloads/status.json")
	v.SetDefault("payloads.withdrawal", "payloads/withdrawal.json")
	v.SetDefault("output.dir", "output")

	v.SetDefault("gateway.timeout", 30) // seconds
	v.SetDefault("gateway.maxBodyBytes", 10<<20)
	v.SetDefault("gateway.userAgent", "psp-client/1.0")

	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.database.port", 5432)
	v.SetDefault("journal.database.sslMode", "disable")
	v.SetDefault("journal.database.maxOpenConns", 2)
	v.SetDefault("journal.database.maxIdleConns", 1)
	v.SetDefault("journal.database.connMaxLifetime", 5) // minutes
	v.SetDefault("journal.database.queryTimeout", 5)    // seconds
	v.SetDefault("journal.database.logLevel", "warn")
}

// getEnvironment determines the environment to use based on PSP_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"PSP_API_KEY":                "apiKey",
		"PSP_LOGGER_LEVEL":           "logger.level",
		"PSP_PAYLOADS_DEPOSIT":       "payloads.deposit",
		"PSP_PAYLOADS_STATUS":        "payloads.status",
		"PSP_PAYLOADS_WITHDRAWAL":    "payloads.withdrawal",
		"PSP_OUTPUT_DIR":             "output.dir",
		"PSP_GATEWAY_PAYMENT_URL":    "gateway.paymentUrl",
		"PSP_GATEWAY_STATUS_URL":     "gateway.statusUrl",
		"PSP_GATEWAY_WITHDRAWAL_URL": "gateway.withdrawalUrl",
		"PSP_DB_HOST":                "journal.database.host",
		"PSP_DB_USERNAME":            "journal.database.username",
		"PSP_DB_PASSWORD":            "journal.database.password",
		"PSP_DB_NAME":                "journal.database.database",
		"PSP_DB_SSL_MODE":            "journal.database.sslMode",
	}
	for env, key := range overrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if timeout := getEnvInt("PSP_GATEWAY_TIMEOUT_SECONDS", 0); timeout > 0 {
		v.Set("gateway.timeout", timeout)
	}
	if port := getEnvInt("PSP_DB_PORT", 0); port > 0 {
		v.Set("journal.database.port", port)
	}
	if enabled, err := strconv.ParseBool(os.Getenv("PSP_JOURNAL_ENABLED")); err == nil {
		v.Set("journal.enabled", enabled)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// Convert seconds to time.Duration
	config.Gateway.Timeout = time.Duration(config.Gateway.Timeout) * time.Second
	config.Journal.Database.QueryTimeout = time.Duration(config.Journal.Database.QueryTimeout) * time.Second

	// Convert minutes to time.Duration
	config.Journal.Database.ConnMaxLifetime = time.Duration(config.Journal.Database.ConnMaxLifetime) * time.Minute
}

// Validate reports every missing required setting at once
func (c *Config) Validate() error {
	var missing []string
	required := []struct {
		key   string
		value string
	}{
		{"apiKey", c.APIKey},
		{"payloads.deposit", c.Payloads.Deposit},
		{"payloads.status", c.Payloads.Status},
		{"payloads.withdrawal", c.Payloads.Withdrawal},
		{"output.dir", c.Output.Dir},
		{"gateway.paymentUrl", c.Gateway.PaymentURL},
		{"gateway.statusUrl", c.Gateway.StatusURL},
		{"gateway.withdrawalUrl", c.Gateway.WithdrawalURL},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	if c.Journal.Enabled {
		if c.Journal.Database.Host == "" {
			missing = append(missing, "journal.database.host")
		}
		if c.Journal.Database.Database == "" {
			missing = append(missing, "journal.database.database")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.Gateway.Timeout <= 0 {
		return fmt.Errorf("gateway timeout must be positive, got: %s", c.Gateway.Timeout)
	}
	return nil
}
