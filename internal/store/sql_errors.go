package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassificator translates low-level driver errors into the sentinel
// errors of this package so that callers can use errors.Is without knowing
// which database backend is in use.
type ErrorClassificator interface {
	// Classify returns a package sentinel for recognised driver errors and
	// the original error otherwise.
	Classify(err error) error
}

type postgresErrorClassifier struct{}

// NewPostgresErrorClassifier returns an [ErrorClassificator] for pgx errors.
func NewPostgresErrorClassifier() ErrorClassificator {
	return postgresErrorClassifier{}
}

func (postgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrEmailAlreadyExists
	}

	return err
}

type sqliteErrorClassifier struct{}

// NewSQLiteErrorClassifier returns an [ErrorClassificator] for go-sqlite3
// errors.
func NewSQLiteErrorClassifier() ErrorClassificator {
	return sqliteErrorClassifier{}
}

func (sqliteErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return ErrEmailAlreadyExists
	}

	return err
}
