// Package storage provides key-value backends for locally persisted data.
package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/recipehaven/internal/domain"
	"github.com/hammamikhairi/recipehaven/internal/logger"
)

// Compile-time interface check.
var _ Store = (*MemoryKV)(nil)

// MemoryKV is an in-memory key-value store. Safe for concurrent access.
// Values are copied on the way in and out.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
	log  *logger.Logger
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV(log *logger.Logger) *MemoryKV {
	return &MemoryKV{
		data: make(map[string][]byte),
		log:  log,
	}
}

// Get returns the value stored under key.
func (s *MemoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		s.log.Debug("key not found: %s", key)
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores value under key, replacing any previous value.
func (s *MemoryKV) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return domain.ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("put %s (%d bytes)", key, len(value))
	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op.
func (s *MemoryKV) Close() error { return nil }
