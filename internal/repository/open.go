package repository

import (
	"context"
	"fmt"

	"clipshare/internal/config"
	"clipshare/internal/repository/filestore"
	"clipshare/internal/repository/inmemory"
	"clipshare/internal/repository/postgres"
	"clipshare/internal/repository/sqlite"

	"github.com/rs/zerolog"
)

// Open picks the backend named by cfg.StorageType.
func Open(ctx context.Context, cfg *config.Config, log *zerolog.Logger) (Storage, error) {
	switch cfg.StorageType {
	case config.StorageMemory, "":
		if cfg.FileStoragePath == "" {
			log.Info().Msg("using in-memory storage")
			return inmemory.NewStorage(), nil
		}
		log.Info().Str("path", cfg.FileStoragePath).Msg("using in-memory storage with file snapshot")
		s, err := filestore.NewSnapshotStorage(ctx, log, cfg.FileStoragePath)
		if err != nil {
			return nil, err
		}
		return s, nil

	case config.StorageSQLite:
		log.Info().Str("path", cfg.SQLitePath).Msg("using sqlite storage")
		s, err := sqlite.NewStorage(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		return s, nil

	case config.StoragePostgres:
		log.Info().Msg("using postgres storage")
		s, err := postgres.NewStorage(ctx, cfg.DatabaseDSN, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
}
