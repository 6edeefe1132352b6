package common

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"pisos-tracker/internal/config"
	"pisos-tracker/internal/logging"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	logging.Info("Initializing Redis client", "addr", cfg.Addr(), "db", cfg.DB)

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// the pool keeps retrying; notices fail until Redis is back
		logging.Warn("Failed to ping Redis", "error", err.Error())
		return client
	}

	logging.Info("Connected to Redis")
	return client
}
