package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no account matches the requested id
	// or email.
	ErrUserNotFound = errors.New("user was not found")

	// ErrProjectNotFound is returned when no project matches the requested id.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrFamilyMemberNotFound is returned when no family member with the
	// requested id exists inside the addressed project.
	ErrFamilyMemberNotFound = errors.New("family member was not found")

	// ErrDocumentNotFound is returned when no document with the requested id
	// exists inside the addressed project.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrRelationshipNotFound is returned when no relationship with the
	// requested id exists inside the addressed project.
	ErrRelationshipNotFound = errors.New("relationship was not found")

	// ErrRelationshipAlreadyExists is returned when the same typed link
	// between two persons is recorded twice.
	ErrRelationshipAlreadyExists = errors.New("relationship already exists")

	// ErrInvalidReference is returned when a row points at a user, project,
	// person or document that does not exist or belongs to another project
	// (foreign key violation).
	ErrInvalidReference = errors.New("referenced row does not exist")

	// ErrInvalidData is returned when a row violates a CHECK or NOT NULL
	// constraint of the schema.
	ErrInvalidData = errors.New("row violates a schema constraint")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails for a reason that has no dedicated
	// sentinel.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
