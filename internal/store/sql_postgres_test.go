package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB into a store DB for tests.
func newDBFromSQL(db *sql.DB) *DB {
	return newDB(db, logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ─────────────────────────────────────────────────────────────
// error classification
// ─────────────────────────────────────────────────────────────

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.UniqueViolation, Conflict},
		{pgerrcode.ForeignKeyViolation, InvalidReference},
		{pgerrcode.CheckViolation, InvalidData},
		{pgerrcode.NotNullViolation, InvalidData},
		{pgerrcode.InvalidDatetimeFormat, InvalidData},
		{pgerrcode.NumericValueOutOfRange, InvalidData},
		{pgerrcode.ConnectionFailure, Unavailable},
		{pgerrcode.SerializationFailure, Unavailable},
		{pgerrcode.DeadlockDetected, Unavailable},
		{pgerrcode.CannotConnectNow, Unavailable},
		{pgerrcode.SyntaxError, Unclassified},
		{pgerrcode.UndefinedTable, Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPgError(&pgconn.PgError{Code: tt.code}))
		})
	}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Unclassified, c.Classify(nil))
	assert.Equal(t, Unclassified, c.Classify(errors.New("plain error")))
	assert.Equal(t, Conflict, c.Classify(fmt.Errorf("wrapped: %w", pgError(pgerrcode.UniqueViolation))))
}

func TestDB_writeError(t *testing.T) {
	db := &DB{}
	conflict := errors.New("conflict sentinel")

	tests := []struct {
		name     string
		err      error
		conflict error
		want     error
	}{
		{"unique with conflict sentinel", pgError(pgerrcode.UniqueViolation), conflict, conflict},
		{"unique without conflict sentinel", pgError(pgerrcode.UniqueViolation), nil, ErrExecutingStatement},
		{"foreign key", pgError(pgerrcode.ForeignKeyViolation), conflict, ErrInvalidReference},
		{"check", pgError(pgerrcode.CheckViolation), nil, ErrInvalidData},
		{"other driver error", errors.New("broken pipe"), conflict, ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := db.writeError(tt.err, tt.conflict)
			require.ErrorIs(t, got, tt.want)
			require.ErrorIs(t, got, tt.err, "driver error must stay in the chain")
		})
	}
}

func TestRowError(t *testing.T) {
	notFound := errors.New("not found")

	assert.Equal(t, notFound, rowError(sql.ErrNoRows, notFound))
	assert.ErrorIs(t, rowError(fmt.Errorf("scan: %w", sql.ErrNoRows), notFound), notFound)

	err := rowError(errors.New("bad column"), notFound)
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, notFound)
}

func TestStorages_PingAndClose(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	storages := NewStoragesFromDB(newDBFromSQL(sqlDB), logger.Nop())
	require.NotNil(t, storages.UserRepository)
	require.NotNil(t, storages.ProjectRepository)
	require.NotNil(t, storages.FamilyMemberRepository)
	require.NotNil(t, storages.DocumentRepository)
	require.NotNil(t, storages.RelationshipRepository)
	require.NotNil(t, storages.AnalysisRepository)
	require.NotNil(t, storages.StatsRepository)
	require.NotNil(t, storages.SeedRepository)

	mock.ExpectPing()
	mock.ExpectClose()

	require.NoError(t, storages.Ping(context.Background()))
	require.NoError(t, storages.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorages_ZeroValue(t *testing.T) {
	var storages Storages

	assert.ErrorIs(t, storages.Ping(context.Background()), ErrExecutingQuery)
	assert.NoError(t, storages.Close())
}
