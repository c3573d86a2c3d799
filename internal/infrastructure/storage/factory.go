// Package storage selects and constructs the configured archive backend.
package storage

import (
	"context"
	"fmt"

	"driveledger/internal/config"
	"driveledger/internal/domain/ledger"
	"driveledger/internal/infrastructure/storage/postgres"
	"driveledger/internal/infrastructure/storage/sqlite"
	"driveledger/pkg/logger"
)

// NewArchive builds the archive named by cfg.StorageBackend. The memory
// backend archives nothing and loses state on restart.
func NewArchive(ctx context.Context, cfg *config.Config) (ledger.Archive, error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
		if err != nil {
			return nil, fmt.Errorf("initialize postgres pool: %w", err)
		}
		archive, err := postgres.NewArchive(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("initialize postgres archive: %w", err)
		}
		logger.Info(ctx, "initialized postgres archive")
		return archive, nil

	case config.BackendSQLite:
		archive, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite archive: %w", err)
		}
		logger.Info(ctx, "initialized sqlite archive", "db_path", cfg.SQLitePath)
		return archive, nil

	case config.BackendMemory:
		logger.Info(ctx, "running without archive, state is in-memory only")
		return ledger.NopArchive{}, nil

	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.StorageBackend)
	}
}
