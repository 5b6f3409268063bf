package sinks

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigratePostgres applies every pending migration in sinks/migrations
// against db, using pressly/goose/v3 — the same migration tool
// dmitrymomot-foundation depends on for its own Postgres-backed stores.
// Call this once before running a Postgres sink built by Postgres.
func MigratePostgres(db *sql.DB) error {
	goose.SetBaseFS(migrationFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("sinks: goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("sinks: goose up: %w", err)
	}
	return nil
}
