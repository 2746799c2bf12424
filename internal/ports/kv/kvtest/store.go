// Package kvtest trae un kv.Store en memoria con fallas inyectables para tests.
package kvtest

import (
	"context"
	"errors"
	"sync"

	"echo-journal/internal/ports/kv"
)

var (
	ErrInjectedRead  = errors.New("kvtest: injected read failure")
	ErrInjectedWrite = errors.New("kvtest: injected write failure")
)

type Store struct {
	mu sync.Mutex

	data   map[string][]byte
	writes map[string]int

	failReads  bool
	failWrites bool

	// gate, si no es nil, bloquea cada Set hasta recibir un valor.
	gate chan struct{}
}

func New() *Store {
	return &Store{
		data:   map[string][]byte{},
		writes: map[string]int{},
	}
}

var _ kv.Store = (*Store)(nil)

func (s *Store) FailReads(v bool) {
	s.mu.Lock()
	s.failReads = v
	s.mu.Unlock()
}

func (s *Store) FailWrites(v bool) {
	s.mu.Lock()
	s.failWrites = v
	s.mu.Unlock()
}

// Gate hace que cada Set espere un envío en el canal devuelto.
func (s *Store) Gate() chan<- struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate = make(chan struct{})
	return s.gate
}

// Put escribe crudo, sin contar como write. Útil para sembrar datos corruptos.
func (s *Store) Put(key string, raw []byte) {
	s.mu.Lock()
	s.data[key] = append([]byte(nil), raw...)
	s.mu.Unlock()
}

func (s *Store) Raw(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return append([]byte(nil), v...), ok
}

func (s *Store) Writes(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[key]
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failReads {
		return nil, ErrInjectedRead
	}
	v, ok := s.data[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	gate := s.gate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.writes[key]++
	if s.failWrites {
		return ErrInjectedWrite
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWrites {
		return ErrInjectedWrite
	}
	delete(s.data, key)
	return nil
}

func (s *Store) Close() error { return nil }
