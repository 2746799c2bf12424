package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"echo-journal/internal/ports/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, path string) *KVStore {
	t.Helper()

	db, err := Open(path)
	require.NoError(t, err)

	s, err := NewKVStore(context.Background(), db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKVStore_UpsertAndRemove(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, filepath.Join(t.TempDir(), "db", "echo.db"))

	_, err := s.Get(ctx, "echo_settings")
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, s.Set(ctx, "echo_settings", []byte(`{"theme":"dark"}`)))
	require.NoError(t, s.Set(ctx, "echo_settings", []byte(`{"theme":"light"}`)))

	got, err := s.Get(ctx, "echo_settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"light"}`, string(got))

	require.NoError(t, s.Remove(ctx, "echo_settings"))
	_, err = s.Get(ctx, "echo_settings")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestKVStore_NamespacesAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, filepath.Join(t.TempDir(), "echo.db"))

	require.NoError(t, s.Set(ctx, "echo_events", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "echo_diaries", []byte(`[1]`)))
	require.NoError(t, s.Remove(ctx, "echo_events"))

	got, err := s.Get(ctx, "echo_diaries")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))
}

func TestKVStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "echo.db")

	db, err := Open(path)
	require.NoError(t, err)
	s, err := NewKVStore(ctx, db)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "echo_events", []byte(`["x"]`)))
	require.NoError(t, s.Close())

	s2 := openTestStore(t, path)
	got, err := s2.Get(ctx, "echo_events")
	require.NoError(t, err)
	assert.Equal(t, `["x"]`, string(got))
}
