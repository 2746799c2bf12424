package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"echo-journal/internal/ports/kv"
)

// KVStore guarda cada clave como <dir>/<key>.json.
// La escritura va a un temporal + rename para no dejar archivos a medias.
type KVStore struct {
	dir string
	mu  sync.Mutex
}

func NewKVStore(dir string) (*KVStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("data dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure data dir: %w", err)
	}
	return &KVStore{dir: dir}, nil
}

var _ kv.Store = (*KVStore)(nil)

func (s *KVStore) Dir() string { return s.dir }

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return b, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Close() error { return nil }

func (s *KVStore) path(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
