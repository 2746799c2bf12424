package factory

import (
	"context"
	"path/filepath"
	"testing"

	"echo-journal/internal/adapters/storage/file"
	"echo-journal/internal/adapters/storage/memory"
	"echo-journal/internal/adapters/storage/sqlite"
	"echo-journal/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKVStore_PicksBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cases := []struct {
		driver config.StorageDriver
		check  func(t *testing.T, v any)
	}{
		{config.DriverMemory, func(t *testing.T, v any) { assert.IsType(t, &memory.KVStore{}, v) }},
		{config.DriverFile, func(t *testing.T, v any) { assert.IsType(t, &file.KVStore{}, v) }},
		{config.DriverSQLite, func(t *testing.T, v any) { assert.IsType(t, &sqlite.KVStore{}, v) }},
	}

	for _, tc := range cases {
		t.Run(string(tc.driver), func(t *testing.T) {
			cfg := &config.Config{
				StorageDriver: tc.driver,
				DataDir:       filepath.Join(dir, "files"),
				SQLitePath:    filepath.Join(dir, "echo.db"),
			}
			s, err := NewKVStore(ctx, cfg)
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			tc.check(t, s)
		})
	}
}

func TestNewKVStore_UnknownDriver(t *testing.T) {
	_, err := NewKVStore(context.Background(), &config.Config{StorageDriver: "redis"})
	require.ErrorIs(t, err, config.ErrUnsupportedDriver)
}
