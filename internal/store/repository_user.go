package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with the server-assigned
// timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - check violation (unknown role, upper-case email) → [ErrInvalidData].
//   - Any other driver-level error → [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.Email, user.Name, user.PasswordHash, user.Role)

	var created models.User
	if err := scanUser(row, &created); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, r.db.writeError(err, ErrEmailAlreadyExists)
	}

	return created, nil
}

// FindUserByEmail returns the account registered under email. The caller
// normalizes the address.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID returns the account with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	if err := scanUser(r.db.QueryRowContext(ctx, query, arg), &user); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", funcName).Msg("error scanning user")
		}
		return models.User{}, rowError(err, ErrUserNotFound)
	}

	return user, nil
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt)
}
