package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite3/*.sql
var embedMigrations embed.FS

// Migrate applies every pending migration for the given driver.
// Each supported driver carries its own migration directory because
// the autoincrement syntax differs between Postgres and SQLite.
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	var dir string
	switch driver {
	case "pgx":
		dir = "postgres"
	case "sqlite3":
		dir = "sqlite3"
	default:
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
