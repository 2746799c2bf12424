package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"echo-journal/internal/ports/kv"
)

var (
	ErrClosed = errors.New("memory store closed")
)

// KVStore guarda blobs en un map. No sobrevive al proceso; sirve para dev y tests.
type KVStore struct {
	mu     sync.RWMutex
	byKey  map[string][]byte
	closed bool
}

func NewKVStore() *KVStore {
	return &KVStore{
		byKey: make(map[string][]byte),
	}
}

var _ kv.Store = (*KVStore)(nil)

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}
	v, ok := s.byKey[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	// copia para que el caller no comparta el buffer interno
	return append([]byte(nil), v...), nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("key required")
	}
	s.byKey[key] = append([]byte(nil), value...)
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	delete(s.byKey, key)
	return nil
}

func (s *KVStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
