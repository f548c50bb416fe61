package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. It backs tests and the default
// composition when no durable backend is configured, and mirrors the
// synchronous string-in/string-out semantics of browser localStorage.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value for key, if present.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

var _ Store = (*MemoryStore)(nil)
