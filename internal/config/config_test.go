package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverFile, cfg.StorageDriver)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 5*time.Second, cfg.PersistTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.APIToken)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", " SQLite ")
	t.Setenv("SQLITE_PATH", "/tmp/echo.db")
	t.Setenv("PERSIST_TIMEOUT", "250ms")
	t.Setenv("ECHO_TIMEZONE", "UTC")
	t.Setenv("ECHO_API_TOKEN", "s3cret")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "/tmp/echo.db", cfg.SQLitePath)
	assert.Equal(t, 250*time.Millisecond, cfg.PersistTimeout)
	assert.Equal(t, "s3cret", cfg.APIToken)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestParse_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")

	_, err := Parse()
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestParse_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := Parse()
	require.ErrorIs(t, err, ErrMissingDSN)

	t.Setenv("DB_DSN", "postgres://localhost/echo")
	_, err = Parse()
	require.NoError(t, err)
}

func TestParse_RejectsBadTimezone(t *testing.T) {
	t.Setenv("ECHO_TIMEZONE", "Mars/Olympus")

	_, err := Parse()
	require.Error(t, err)
}
