package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"echo-journal/internal/ports/kv"

	_ "modernc.org/sqlite"
)

// Open abre (o crea) la base SQLite en path con WAL activado.
func Open(path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite path required")
	}
	// sin el directorio padre sqlite devuelve SQLITE_CANTOPEN
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// un solo writer; sqlite serializa igual
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

type KVStore struct {
	db *sql.DB
}

// NewKVStore crea la tabla si hace falta. El store es dueño de db y lo cierra en Close.
func NewKVStore(ctx context.Context, db *sql.DB) (*KVStore, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure kv_store schema: %w", err)
	}
	return &KVStore{db: db}, nil
}

var _ kv.Store = (*KVStore)(nil)

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("key required")
	}
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key)
	return err
}

func (s *KVStore) Close() error {
	return s.db.Close()
}
