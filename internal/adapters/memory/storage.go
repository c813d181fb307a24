// Package memory provides an in-process LocalStorage for tests and ephemeral CLI runs.
package memory

import (
	"context"
	"sync"

	"github.com/learnhub/admin-console/internal/ports"
)

// Storage keeps session entries in a map. Safe for concurrent use.
type Storage struct {
	mu      sync.RWMutex
	entries map[string]string
}

var _ ports.LocalStorage = (*Storage)(nil)

// NewStorage creates an empty Storage.
func NewStorage() *Storage {
	return &Storage{entries: make(map[string]string)}
}

func (s *Storage) Load(_ context.Context, keys ...string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := s.entries[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (s *Storage) Store(_ context.Context, entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range entries {
		s.entries[k] = v
	}
	return nil
}

func (s *Storage) Remove(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.entries, k)
	}
	return nil
}

// Len returns the number of stored entries.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
