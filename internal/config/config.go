// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the shop
type Config struct {
	App             AppConfig
	Catalog         CatalogConfig
	Display         DisplayConfig
	Logging         LoggingConfig
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `validate:"required"`
	Version     string `validate:"required"`
	Environment string `validate:"oneof=development staging production test"`
}

// CatalogConfig controls sample inventory generation
type CatalogConfig struct {
	// Seed for the sample generator. Zero seeds from the clock.
	Seed              int64
	FoodCount         int `validate:"gte=0"`
	UtilitiesCount    int `validate:"gte=0"`
	AccessoriesCount  int `validate:"gte=0"`
	HealthcareCount   int `validate:"gte=0"`
	LowStockThreshold int `validate:"gte=0"`
}

// DisplayConfig contains presentation settings
type DisplayConfig struct {
	CurrencySymbol string `validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `validate:"required"`
	Format string `validate:"oneof=json text"`
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Pet Shop"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Catalog: CatalogConfig{
			Seed:              getEnvAsInt64("CATALOG_SEED", 0),
			FoodCount:         getEnvAsInt("CATALOG_FOOD_COUNT", 10),
			UtilitiesCount:    getEnvAsInt("CATALOG_UTILITIES_COUNT", 10),
			AccessoriesCount:  getEnvAsInt("CATALOG_ACCESSORIES_COUNT", 10),
			HealthcareCount:   getEnvAsInt("CATALOG_HEALTHCARE_COUNT", 10),
			LowStockThreshold: getEnvAsInt("CATALOG_LOW_STOCK_THRESHOLD", 5),
		},
		Display: DisplayConfig{
			CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₱"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if c.Catalog.FoodCount+c.Catalog.UtilitiesCount+c.Catalog.AccessoriesCount+c.Catalog.HealthcareCount == 0 {
		return errors.New("at least one CATALOG_*_COUNT must be positive")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
