// Package cmd contains the command-line interface logic for the dbmove tool.
//
// This file provides helpers for establishing and managing database connections
// and context/signal handling for commands that talk to the source database.
//
// Connection settings come from flags, DBMOVE_* environment variables, an
// optional .env file, an optional YAML file (--config) and, for mysql, an
// optional my.cnf style file (--defaults-file).
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dbmove/config"
)

// sqlOpen and dbPing are package-level variables to allow test injection.
var sqlOpen = sql.Open
var dbPing = func(ctx context.Context, db *sql.DB) error { return db.PingContext(ctx) }

// withDB validates the connection settings, opens the pool, sets up signal
// handling and calls fn with a live database and a context that is cancelled
// on SIGINT or SIGTERM. The pool is closed when fn returns.
func withDB(cfg *config.Config, logger *slog.Logger, fn func(ctx context.Context, db *sql.DB) error) error {
	if err := cfg.Database.Validate(); err != nil {
		return err
	}
	db, err := sqlOpen(cfg.Database.Driver, cfg.Database.ConnString())
	if err != nil {
		return fmt.Errorf("error creating connection pool: %v", err)
	}
	defer db.Close()
	if cfg.Database.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := dbPing(ctx, db); err != nil {
		return fmt.Errorf("cannot connect to database: %v", err)
	}
	logger.Debug("connected", "driver", cfg.Database.Driver)
	return fn(ctx, db)
}
