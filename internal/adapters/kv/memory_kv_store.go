package kv

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// In-memory KeyValueStore for tests and throwaway sessions.
type MemoryKeyValueStore struct {
	mu sync.Mutex
	m  map[string][]byte

	failWrites bool
}

func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{m: map[string][]byte{}}
}

var errWriteRejected = errors.New("memory kv store: write rejected")

func (s *MemoryKeyValueStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, map[string][]byte{key: value})
}

func (s *MemoryKeyValueStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWrites {
		return errWriteRejected
	}
	for key := range entries {
		if strings.TrimSpace(key) == "" {
			return errors.New("set kv: empty key")
		}
	}
	for key, value := range entries {
		s.m[key] = append([]byte(nil), value...)
	}
	return nil
}

// SetFailWrites makes every following write fail until reset.
func (s *MemoryKeyValueStore) SetFailWrites(fail bool) {
	s.mu.Lock()
	s.failWrites = fail
	s.mu.Unlock()
}
