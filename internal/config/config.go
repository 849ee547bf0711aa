// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Snapshot SnapshotConfig
	Store    StoreConfig
	JWT      JWTConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// SnapshotConfig selects and configures the durable snapshot backend.
// "bolt" keeps everything in a single local file; "redis" targets a shared
// instance with the same key layout.
type SnapshotConfig struct {
	Backend       string
	Path          string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// StoreConfig contains shop-level settings: currency, delivery fees and the
// company block printed on invoices and the contact page.
type StoreConfig struct {
	Currency               string
	DeliveryFeeInsideDhaka int64
	DeliveryFeeOutside     int64
	CompanyName            string
	CompanyAddress         string
	CompanyPhone           string
	CompanyEmail           string
}

// JWTConfig contains session token configuration
type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Rupedia Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Port:         getEnv("APP_PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Snapshot: SnapshotConfig{
			Backend:       getEnv("SNAPSHOT_BACKEND", "bolt"),
			Path:          getEnv("SNAPSHOT_PATH", "data/rupedia.db"),
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
		},
		Store: StoreConfig{
			Currency:               getEnv("STORE_CURRENCY", "BDT"),
			DeliveryFeeInsideDhaka: getEnvAsInt64("DELIVERY_FEE_INSIDE_DHAKA", 80),
			DeliveryFeeOutside:     getEnvAsInt64("DELIVERY_FEE_OUTSIDE", 130),
			CompanyName:            getEnv("COMPANY_NAME", "Rupedia"),
			CompanyAddress:         getEnv("COMPANY_ADDRESS", "Dhaka, Bangladesh"),
			CompanyPhone:           getEnv("COMPANY_PHONE", "+8801700000000"),
			CompanyEmail:           getEnv("COMPANY_EMAIL", "hello@rupedia.example"),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-in-production"),
			SessionExpiry: getEnvAsDuration("JWT_SESSION_EXPIRE", 24*time.Hour),
		},
		Security: SecurityConfig{
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	switch c.Snapshot.Backend {
	case "bolt":
		if c.Snapshot.Path == "" {
			return fmt.Errorf("SNAPSHOT_PATH is required for the bolt backend")
		}
	case "redis":
		if c.Snapshot.RedisHost == "" {
			return fmt.Errorf("REDIS_HOST is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown SNAPSHOT_BACKEND %q (want bolt or redis)", c.Snapshot.Backend)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	if c.Store.DeliveryFeeInsideDhaka < 0 || c.Store.DeliveryFeeOutside < 0 {
		return fmt.Errorf("delivery fees must be non-negative")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Snapshot.RedisHost, c.Snapshot.RedisPort)
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
