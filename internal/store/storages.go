package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/config"
	"github.com/MKhiriev/go-family-tree/internal/logger"
)

// Storages groups every server-side repository into a single value that is
// passed to the service layer. All repositories share one connection pool.
type Storages struct {
	UserRepository         UserRepository
	ProjectRepository      ProjectRepository
	FamilyMemberRepository FamilyMemberRepository
	DocumentRepository     DocumentRepository
	RelationshipRepository RelationshipRepository
	AnalysisRepository     AnalysisRepository
	StatsRepository        StatsRepository
	SeedRepository         SeedRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// the repositories. It performs the following steps:
//  1. Opens a pgx connection pool sized from cfg.DB and pings it.
//  2. Runs the embedded goose migrations via [DB.Migrate].
//  3. Constructs every repository on the shared [DB].
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires the repositories on an already open database.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		ProjectRepository:      NewProjectRepository(db, logger),
		FamilyMemberRepository: NewFamilyMemberRepository(db, logger),
		DocumentRepository:     NewDocumentRepository(db, logger),
		RelationshipRepository: NewRelationshipRepository(db, logger),
		AnalysisRepository:     NewAnalysisRepository(db, logger),
		StatsRepository:        NewStatsRepository(db, logger),
		SeedRepository:         NewSeedRepository(db, logger),
		db:                     db,
	}
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("%w: no database", ErrExecutingQuery)
	}
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
