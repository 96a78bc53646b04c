package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/vnshop/identity/internal/config"
	"github.com/vnshop/identity/internal/logger"
)

// DB wraps the shared *sql.DB handle together with the driver-specific
// error classifier and squirrel statement builder used by the
// repositories.
type DB struct {
	*sql.DB
	classifier ErrorClassifier
	builder    sq.StatementBuilderType
	logger     *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection through the pgx stdlib
// driver, verifies it with a ping, and returns a [DB] configured with
// dollar placeholders and the PostgreSQL error classifier.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		classifier: NewPostgresErrorClassifier(),
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:     log,
	}, nil
}
