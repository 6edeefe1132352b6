package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"pisos-tracker/internal/models/dtos"
)

const flashKeyPrefix = "flash:"

// RedisFlashStore keeps notices in Redis so any instance can consume them.
type RedisFlashStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ FlashStore = (*RedisFlashStore)(nil)

func NewRedisFlashStore(client *redis.Client, ttl time.Duration) *RedisFlashStore {
	return &RedisFlashStore{client: client, ttl: ttl}
}

func (s *RedisFlashStore) Put(ctx context.Context, w http.ResponseWriter, n dtos.Notice) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal flash: %w", err)
	}

	id := uuid.New().String()
	if err := s.client.Set(ctx, flashKeyPrefix+id, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store flash: %w", err)
	}

	setFlashCookie(w, id, s.ttl)
	return nil
}

func (s *RedisFlashStore) Pop(ctx context.Context, w http.ResponseWriter, r *http.Request) (*dtos.Notice, error) {
	id, ok := readFlashCookie(w, r)
	if !ok {
		return nil, nil
	}

	// GETDEL makes consumption atomic across instances
	val, err := s.client.GetDel(ctx, flashKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read flash: %w", err)
	}

	var n dtos.Notice
	if err := json.Unmarshal([]byte(val), &n); err != nil {
		return nil, fmt.Errorf("failed to unmarshal flash: %w", err)
	}
	return &n, nil
}
