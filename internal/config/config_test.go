package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_ADDR", "PORT", "DB_DRIVER", "DATABASE_URL", "FLASH_BACKEND", "FLASH_SECRET", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Contains(t, cfg.Database.URL, "postgres://")
	assert.Equal(t, "cookie", cfg.Flash.Backend)
	assert.Equal(t, 60*time.Second, cfg.Flash.TTL)
	assert.True(t, cfg.UsesDevFlashSecret())
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/pisos?sslmode=require")
	t.Setenv("FLASH_BACKEND", "memory")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "postgres://u:p@db:5432/pisos?sslmode=require", cfg.Database.URL)
	assert.Equal(t, "memory", cfg.Flash.Backend)
	assert.Zero(t, cfg.RateLimit.RPS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.UsesDevFlashSecret())
}

func TestFromEnv_RejectsUnknownBackends(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("FLASH_BACKEND", "session")
	_, err = FromEnv()
	assert.Error(t, err)
}
