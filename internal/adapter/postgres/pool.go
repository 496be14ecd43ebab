package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/wortschatz-backend/internal/config"
	"github.com/heartmarshall/wortschatz-backend/migrations"
)

// NewPool creates a PostgreSQL connection pool configured from DatabaseConfig.
// It parses the DSN, applies pool settings (max/min conns, lifetimes), pings
// the database for fail-fast validation, and returns the ready pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// MigrationResult is one applied or rolled back migration.
type MigrationResult struct {
	Version int64
	Source  string
}

// Migrate applies all pending embedded goose migrations through pool.
// goose needs a *sql.DB, so a database/sql handle is opened on top of the
// pool for the duration of the call.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]MigrationResult, error) {
	return withProvider(pool, func(p *goose.Provider) ([]*goose.MigrationResult, error) {
		return p.Up(ctx)
	})
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(ctx context.Context, pool *pgxpool.Pool) ([]MigrationResult, error) {
	return withProvider(pool, func(p *goose.Provider) ([]*goose.MigrationResult, error) {
		res, err := p.Down(ctx)
		if res == nil {
			return nil, err
		}
		return []*goose.MigrationResult{res}, err
	})
}

func withProvider(pool *pgxpool.Pool, run func(p *goose.Provider) ([]*goose.MigrationResult, error)) ([]MigrationResult, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) { _ = db.Close() }(db)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := run(provider)
	out := make([]MigrationResult, 0, len(results))
	for _, r := range results {
		if r == nil || r.Source == nil {
			continue
		}
		out = append(out, MigrationResult{Version: r.Source.Version, Source: r.Source.Path})
	}
	if err != nil {
		return out, fmt.Errorf("goose: %w", err)
	}
	return out, nil
}
