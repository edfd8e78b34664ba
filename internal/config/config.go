package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all configuration for the application
type Config struct {
	AppMode       string
	Port          string
	LogLevel      string
	RateLimit     int
	AuthRateLimit int
	Database      DatabaseConfig
	JWT           JWTConfig
	Redis         RedisConfig
	Admin         AdminConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SQLitePath string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// RedisConfig holds the optional settings cache configuration.
// An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AdminConfig holds the account seeded at bootstrap
type AdminConfig struct {
	Username string
	Email    string
	Password string
}

// Global config instance
var AppConfig *Config

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	devJWTSecret = "fallback-secret-for-development-only"
)

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// .env is optional in production
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using environment variables")
	}

	// trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	dbConfig := loadDatabaseConfig(appMode)
	if dbConfig.Driver != DriverMySQL && dbConfig.Driver != DriverSQLite {
		return nil, fmt.Errorf("invalid DB_DRIVER: '%s' (must be 'mysql' or 'sqlite')", dbConfig.Driver)
	}

	jwtConfig := loadJWTConfig(appMode)
	if appMode == "prod" && jwtConfig.Secret == devJWTSecret {
		return nil, fmt.Errorf("PROD_JWT_SECRET must be set when APP_MODE=prod")
	}

	defaultLevel := "debug"
	if appMode == "prod" {
		defaultLevel = "info"
	}

	config := &Config{
		AppMode:       appMode,
		Port:          getEnv("PORT", "5000"),
		LogLevel:      getEnv("LOG_LEVEL", defaultLevel),
		RateLimit:     getEnvInt("RATE_LIMIT_MAX", 100),
		AuthRateLimit: getEnvInt("AUTH_RATE_LIMIT_MAX", 5),
		Database:      dbConfig,
		JWT:           jwtConfig,
		Redis:         loadRedisConfig(),
		Admin:         loadAdminConfig(appMode),
	}

	AppConfig = config

	log.Info().Str("mode", appMode).Str("driver", dbConfig.Driver).Msg("configuration loaded")
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	return DatabaseConfig{
		Driver:     strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", DriverMySQL))),
		Host:       getEnv(prefix+"DB_HOST", "localhost"),
		Port:       getEnv(prefix+"DB_PORT", "3306"),
		User:       getEnv(prefix+"DB_USER", "root"),
		Password:   getEnv(prefix+"DB_PASS", ""),
		DBName:     getEnv(prefix+"DB_NAME", "domainfolio"),
		SQLitePath: getEnv("SQLITE_PATH", "domainfolio.db"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := modePrefix(mode)

	expiry := getEnvInt("JWT_EXPIRY_HOURS", 24)
	if expiry < 1 {
		expiry = 24
	}

	return JWTConfig{
		Secret:      getEnv(prefix+"JWT_SECRET", getEnv("JWT_SECRET", devJWTSecret)),
		ExpiryHours: expiry,
	}
}

func loadRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}
}

// loadAdminConfig loads the seeded account. In prod the password has no default,
// so the seeder skips the account unless ADMIN_PASSWORD is provided.
func loadAdminConfig(mode string) AdminConfig {
	defaultPassword := "admin123"
	if mode == "prod" {
		defaultPassword = ""
	}

	return AdminConfig{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Email:    getEnv("ADMIN_EMAIL", "admin@localhost"),
		Password: getEnv("ADMIN_PASSWORD", defaultPassword),
	}
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// CacheEnabled reports whether a Redis address was configured
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:8080"
	}
	return origins
}
