package common

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"pisos-tracker/internal/models/dtos"
)

// MemoryFlashStore keeps notices in process memory, keyed by a random cookie id.
// Only suitable for a single server instance.
type MemoryFlashStore struct {
	mu    sync.Mutex
	cache *cache.Cache
	ttl   time.Duration
}

var _ FlashStore = (*MemoryFlashStore)(nil)

func NewMemoryFlashStore(ttl time.Duration) *MemoryFlashStore {
	return &MemoryFlashStore{
		cache: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (s *MemoryFlashStore) Put(_ context.Context, w http.ResponseWriter, n dtos.Notice) error {
	id := uuid.New().String()
	s.cache.Set(id, n, s.ttl)
	setFlashCookie(w, id, s.ttl)
	return nil
}

func (s *MemoryFlashStore) Pop(_ context.Context, w http.ResponseWriter, r *http.Request) (*dtos.Notice, error) {
	id, ok := readFlashCookie(w, r)
	if !ok {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	val, found := s.cache.Get(id)
	if !found {
		return nil, nil
	}
	s.cache.Delete(id)

	n := val.(dtos.Notice)
	return &n, nil
}
