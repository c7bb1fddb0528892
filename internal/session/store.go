package session

import (
	"sync"
	"time"
)

// Store is one credential slot. The manager keeps two of them in sync: a
// primary slot and a secondary slot intended for non-client contexts.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration)
	Delete(key string)
}

type memoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore returns an in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *memoryStore) Set(key, value string, _ time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *memoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}
