package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/config"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is the shared PostgreSQL connection pool. Every repository embeds or
// holds the same *DB.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(conn, log), nil
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Int("applied", applied).Msg("schema migration failed")
		return err
	}
	db.logger.Info().Int("applied", applied).Msg("database schema is up to date")
	return nil
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NewPostgresErrorClassifier().Classify(err)
	}
	return db.errorClassificator.Classify(err)
}

// writeError translates a failed INSERT or UPDATE into a store sentinel.
// conflict is used for unique violations; nil means the statement has no
// meaningful duplicate and falls through to ErrExecutingStatement.
func (db *DB) writeError(err error, conflict error) error {
	switch db.classify(err) {
	case Conflict:
		if conflict != nil {
			return fmt.Errorf("%w: %w", conflict, err)
		}
	case InvalidReference:
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	case InvalidData:
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

// rowError wraps the error of a single-row lookup. sql.ErrNoRows becomes
// notFound.
func rowError(err error, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return fmt.Errorf("%w: %w", ErrScanningRow, err)
}
