// SPDX-License-Identifier: Apache-2.0

// Package store implements the persistence layer of the application: the
// database connection wrapper, per-driver error classification, and the
// user and snippet repositories.
package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mfadhilr/contekan/internal/config"
	"github.com/mfadhilr/contekan/internal/logger"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB wraps the database/sql connection together with the driver-appropriate
// squirrel statement builder and error classifier. Repositories embed *DB
// and stay dialect-agnostic.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database connection for the configured driver, verifies
// it with a ping, and returns the wrapped handle.
//
// PostgreSQL uses $n placeholders, SQLite uses ?; the returned builder is
// configured accordingly so repository code never hardcodes either.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var builder sq.StatementBuilderType
	var classifier ErrorClassificator

	switch cfg.Driver {
	case DriverPostgres:
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		classifier = NewPostgresErrorClassifier()
	case DriverSQLite:
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		classifier = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedDriver, cfg.Driver)
	}

	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("driver", cfg.Driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", cfg.Driver).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("driver", cfg.Driver).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		builder:            builder,
		errorClassificator: classifier,
		logger:             log,
	}, nil
}
