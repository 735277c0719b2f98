package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tobi-akande/expense-scanner/gen/ent"
	"github.com/tobi-akande/expense-scanner/internal/common"
)

// DB bundles an open client with its cleanup.
type DB struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens Postgres when a DSN is configured, otherwise SQLite
// (":memory:" when inmem is set). SQLite runs migrate on open since there is
// no external schema management for local databases.
func InitDatabase(ctx context.Context, cfg common.DatabaseConfig, inmem bool, logger *slog.Logger) (*DB, error) {
	if cfg.DSN != "" && !inmem {
		client, pool, err := Open(ctx, Config{
			DSN:              cfg.DSN,
			MaxConns:         cfg.MaxConns,
			MinConns:         cfg.MinConns,
			MaxConnLifetime:  cfg.MaxConnLifetime,
			MaxConnIdleTime:  cfg.MaxConnIdleTime,
			DialTimeout:      cfg.DialTimeout,
			StatementTimeout: cfg.StatementTimeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		return &DB{
			Client:  client,
			Pool:    pool,
			Cleanup: func() { Close(client, pool, logger) },
		}, nil
	}

	path := cfg.SQLitePath
	if inmem || path == "" {
		path = ":memory:"
	}
	client, err := OpenSQLite(path, logger)
	if err != nil {
		return nil, err
	}
	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("failed to migrate sqlite schema", "error", err)
		_ = client.Close()
		return nil, err
	}
	return &DB{
		Client:  client,
		Cleanup: func() { Close(client, nil, logger) },
	}, nil
}
