package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/memory"
	"github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	pgcollection "github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres/collection"
	pgword "github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/wortschatz-backend/internal/config"
	"github.com/heartmarshall/wortschatz-backend/internal/service/collection"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Storage is the collection store bound to the configured backend.
type Storage struct {
	Collections *collection.Service
	Pinger      pinger
	close       func()
}

// Close releases the backend's resources.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage connects the configured backend and builds the collection
// service on top of it. PostgreSQL migrations are applied on open unless
// skip_migrate is set.
func OpenStorage(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Storage, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		store := memory.New()
		logger.WarnContext(ctx, "using in-memory storage; data is lost on exit")
		return &Storage{
			Collections: collection.NewService(logger, store.Collections(), store.Words(), store),
			Pinger:      store,
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if !cfg.SkipMigrate {
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
			for _, m := range applied {
				logger.InfoContext(ctx, "migration applied", slog.Int64("version", m.Version), slog.String("source", m.Source))
			}
		}
		return &Storage{
			Collections: collection.NewService(logger, pgcollection.New(pool), pgword.New(pool), postgres.NewTxManager(pool)),
			Pinger:      pool,
			close:       pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
