package store

import (
	"context"
	"fmt"

	"github.com/vnshop/identity/internal/config"
	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/migrations"
)

// Storages groups all repositories into a single value that can be passed
// to the service layer.
type Storages struct {
	UserDirectory UserDirectory
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the database connection selected by cfg.DB.Driver (PostgreSQL
//     in production, SQLite for local development).
//  2. Runs pending schema migrations.
//  3. Constructs a [Storages] value wired to a fresh [UserDirectory].
//
// Returns an error if the connection cannot be established or migration
// fails.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := migrations.Migrate(db.DB, cfg.DB.Driver); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserDirectory: NewUserDirectory(db, log),
	}, nil
}
