package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells a repository which store sentinel a failed statement maps to.
type ErrorClassification int

const (
	// Unclassified covers every error that has no dedicated sentinel:
	// connection problems, syntax errors, non-PostgreSQL errors.
	Unclassified ErrorClassification = iota

	// Conflict is a unique constraint violation (23505).
	Conflict

	// InvalidReference is a foreign key violation (23503).
	InvalidReference

	// InvalidData is a check, not-null or data exception (23514, 23502, class 22).
	InvalidData

	// Unavailable is a transient condition: lost connection, deadlock,
	// serialization failure or a server that is starting up.
	Unavailable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to an [ErrorClassification] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 23: integrity constraint violations
	case pgerrcode.UniqueViolation:
		return Conflict
	case pgerrcode.ForeignKeyViolation:
		return InvalidReference
	case pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation:
		return InvalidData

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		// Class 40: transaction rollback
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		// Class 57: operator intervention
		pgerrcode.CannotConnectNow:
		return Unavailable
	}

	// Class 22: data exceptions (bad date literal, numeric out of range, ...)
	if pgerrcode.IsDataException(pgErr.Code) {
		return InvalidData
	}

	return Unclassified
}
