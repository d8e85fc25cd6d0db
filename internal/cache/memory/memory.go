// Package memory is the in-process response cache backend. It is unbounded
// and lives for the process lifetime, which is acceptable for a bounded
// corpus that changes slowly relative to process uptime.
package memory

import (
	"context"
	"sync"

	"github.com/barros13/chatbot/internal/cache"
)

// Store is a mutex-guarded map. It implements cache.Store.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// New creates an empty in-memory store.
func New() cache.Store {
	return &Store{entries: make(map[string][]byte)}
}

// Get returns the payload stored under key, if any.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	return value, ok, nil
}

// Set stores the payload under key, overwriting any previous value.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}
