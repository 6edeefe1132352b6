package common

import (
	"fmt"

	"pisos-tracker/internal/config"
)

// NewFlashStore picks the backend named by cfg.Flash.Backend.
func NewFlashStore(cfg *config.Config) (FlashStore, error) {
	switch cfg.Flash.Backend {
	case "cookie":
		return NewCookieFlashStore([]byte(cfg.Flash.Secret), cfg.Flash.TTL), nil
	case "memory":
		return NewMemoryFlashStore(cfg.Flash.TTL), nil
	case "redis":
		return NewRedisFlashStore(NewRedisClient(cfg.Redis), cfg.Flash.TTL), nil
	default:
		return nil, fmt.Errorf("unknown flash backend %q", cfg.Flash.Backend)
	}
}
