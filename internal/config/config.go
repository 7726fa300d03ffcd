package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	Identity IdentityConfig
}

// IdentityConfig selects and configures the external identity provider.
type IdentityConfig struct {
	Provider string
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
}

const (
	IdentityProviderGoTrue = "gotrue"
	IdentityProviderLocal  = "local"
)

// Module provides the loaded configuration.
var Module = fx.Provide(Load)

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "familia"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),

		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "familia"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", "postgres"),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 25),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 300),

		Identity: IdentityConfig{
			Provider: normalizeIdentityProvider(getenv("IDENTITY_PROVIDER", IdentityProviderLocal)),
			BaseURL:  strings.TrimRight(strings.TrimSpace(getenv("IDENTITY_BASE_URL", "")), "/"),
			APIKey:   strings.TrimSpace(getenv("IDENTITY_API_KEY", "")),
			Timeout:  time.Duration(getenvInt("IDENTITY_TIMEOUT_SECONDS", 10)) * time.Second,
		},
	}
}

func normalizeIdentityProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case IdentityProviderGoTrue:
		return IdentityProviderGoTrue
	default:
		return IdentityProviderLocal
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
