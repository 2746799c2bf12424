package factory

import (
	"context"
	"fmt"

	"echo-journal/internal/adapters/storage/file"
	"echo-journal/internal/adapters/storage/memory"
	"echo-journal/internal/adapters/storage/postgres"
	"echo-journal/internal/adapters/storage/sqlite"
	"echo-journal/internal/config"
	"echo-journal/internal/ports/kv"
)

// NewKVStore elige el backend según cfg.StorageDriver.
func NewKVStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return memory.NewKVStore(), nil
	case config.DriverFile:
		return file.NewKVStore(cfg.DataDir)
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		s, err := sqlite.NewKVStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return s, nil
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		s, err := postgres.NewKVStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedDriver, cfg.StorageDriver)
	}
}
