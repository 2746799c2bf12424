package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"echo-journal/internal/ports/kv"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type KVStore struct {
	db *sql.DB
}

// NewKVStore asegura la tabla kv_store. El store es dueño de db.
func NewKVStore(ctx context.Context, db *sql.DB) (*KVStore, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure kv_store schema: %w", err)
	}
	return &KVStore{db: db}, nil
}

var _ kv.Store = (*KVStore)(nil)

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, kv.ErrNotFound
	}

	var v []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("key required")
	}
	if value == nil {
		value = []byte{}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, value)
	return err
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, strings.TrimSpace(key))
	return err
}

func (s *KVStore) Close() error {
	return s.db.Close()
}
