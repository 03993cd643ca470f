// Package memory provides a process-local key/value store for tests, the CLI and single-node demos.
package memory

import (
	"context"
	"sync"

	"loyalty/internal/domain/repository"
)

type kvStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKeyValueStore creates an empty in-memory store.
func NewKeyValueStore() repository.KeyValueStore {
	return &kvStore{data: make(map[string]string)}
}

func (s *kvStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}

	return value, nil
}

func (s *kvStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value

	return nil
}

func (s *kvStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}
