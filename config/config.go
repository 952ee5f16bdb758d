package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string
	BodyLimitBytes int
	RateLimitMax   int
	RateWindowSecs int
	LogLevel       string

	StoreDriver string
	StoreKey    string
	StoreDir    string
	DbDsn       string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads the environment (and ./.env when present).
func Load() (Config, error) {
	_ = godotenv.Load()

	// BODY_LIMIT_BYTES wins over BODY_LIMIT_MB.
	bodyLimit := getEnvInt("BODY_LIMIT_BYTES", 0)
	if bodyLimit <= 0 {
		bodyLimit = getEnvInt("BODY_LIMIT_MB", 4) * 1024 * 1024
	}

	cfg := Config{
		AppEnv:         getEnv("APP_ENV", "local"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		BodyLimitBytes: bodyLimit,
		RateLimitMax:   getEnvInt("RATE_LIMIT_MAX", 60),
		RateWindowSecs: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", DriverFile)),
		StoreKey:       getEnv("STORE_KEY", "invoices"),
		StoreDir:       getEnv("STORE_DIR", "data"),
		DbDsn:          os.Getenv("DB_DSN"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
	}

	missing := []string{}
	switch cfg.StoreDriver {
	case DriverMemory, DriverFile:
	case DriverRedis:
		if cfg.RedisAddr == "" {
			missing = append(missing, "REDIS_ADDR")
		}
	case DriverPostgres, DriverMySQL:
		if cfg.DbDsn == "" {
			missing = append(missing, "DB_DSN")
		}
	default:
		return cfg, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if strings.TrimSpace(cfg.StoreKey) == "" {
		missing = append(missing, "STORE_KEY")
	}

	if len(missing) > 0 {
		return cfg, errors.New("missing env: " + strings.Join(missing, ", "))
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
