package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DevFlashSecret is only meant for local runs; Load warns when it is in use.
const DevFlashSecret = "cambia_esto_por_algo_secreto"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	AppEnv   string
	HTTPAddr string

	Database  DatabaseConfig
	Flash     FlashConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig

	CORSAllowedOrigins []string
}

type DatabaseConfig struct {
	Driver         string
	URL            string
	SQLitePath     string
	ConnectRetries int
}

type FlashConfig struct {
	Backend string
	Secret  string
	TTL     time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Load reads the .env file (if any) and returns a populated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":"+getEnv("PORT", "5000")),
		Database: DatabaseConfig{
			Driver:         strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			URL:            getEnv("DATABASE_URL", ""),
			SQLitePath:     getEnv("SQLITE_PATH", "pisos.db"),
			ConnectRetries: getEnvInt("DB_CONNECT_RETRIES", 10),
		},
		Flash: FlashConfig{
			Backend: strings.ToLower(getEnv("FLASH_BACKEND", "cookie")),
			Secret:  getEnv("FLASH_SECRET", DevFlashSecret),
			TTL:     time.Duration(getEnvInt("FLASH_TTL_SECONDS", 60)) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
			Burst: getEnvInt("RATE_LIMIT_BURST", 10),
		},
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}

	if cfg.Database.URL == "" {
		cfg.Database.URL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			getEnv("PG_USER", "postgres"),
			getEnv("PG_PASSWORD", ""),
			getEnv("PG_HOST", "localhost"),
			getEnv("PG_PORT", "5432"),
			getEnv("PG_DB", "pisos"),
			getEnv("PG_SSLMODE", "disable"),
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Flash.Backend {
	case "cookie", "memory", "redis":
	default:
		return fmt.Errorf("config: unsupported FLASH_BACKEND %q", c.Flash.Backend)
	}
	if c.Flash.TTL <= 0 {
		return fmt.Errorf("config: FLASH_TTL_SECONDS must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// UsesDevFlashSecret reports whether flash cookies are signed with the built-in key.
func (c *Config) UsesDevFlashSecret() bool {
	return c.Flash.Backend == "cookie" && c.Flash.Secret == DevFlashSecret
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
