// Package migrations embeds the SQL schema of the server database and applies
// it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned by [Migrate] when it is called without a connection.
var ErrNilDB = errors.New("db is nil")

// Migrate applies every pending migration and returns how many ran.
// Requires PostgreSQL 15 or newer (column list in ON DELETE SET NULL).
func Migrate(ctx context.Context, db *sql.DB) (int, error) {
	if db == nil {
		return 0, fmt.Errorf("migration error: %w", ErrNilDB)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, embedMigrations)
	if err != nil {
		return 0, fmt.Errorf("migration error creating provider: %w", err)
	}

	applied, err := provider.Up(ctx)
	if err != nil {
		return len(applied), fmt.Errorf("migration error: %w", err)
	}

	return len(applied), nil
}
