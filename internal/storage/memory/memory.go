// Package memory provides an in-process implementation of storage.KV.
// It is safe for concurrent use and is primarily intended for tests and
// ephemeral runs.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/mmynk/splitbeam/internal/storage"
)

var _ storage.KV = (*Store)(nil)

// Store is a map-backed KV.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
	writes int
}

// New creates an empty store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	s.writes++
	return nil
}

// Writes returns how many Set calls the store has served.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Dump returns a copy of every stored key and value.
func (s *Store) Dump() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
