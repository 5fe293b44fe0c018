package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Migrate runs all pending embedded migrations of dialect.
func Migrate(db *sql.DB, dialect string) error {
	var gooseDialect, dir string
	switch dialect {
	case DialectSQLite:
		gooseDialect, dir = "sqlite3", "migrations/sqlite"
	case DialectPostgres:
		gooseDialect, dir = "postgres", "migrations/postgres"
	default:
		return fmt.Errorf("unknown sql dialect %q", dialect)
	}

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("run goose up migrations: %w", err)
	}
	return nil
}
