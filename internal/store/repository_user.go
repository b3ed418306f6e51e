package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
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

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The INSERT is a single atomic statement: uniqueness of the email is
// enforced by the database constraint, not by a prior existence check, so
// two concurrent registrations with the same email cannot both succeed.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver or scan failure → wrapped in [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var passwordHash any
	if user.Kind == models.AccountLocal {
		passwordHash = user.PasswordHash
	}

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, passwordHash, user.Kind)

	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Kind, &user.CreatedAt); err != nil {
		switch {
		case postgresError(err) == pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	return user, nil
}

// FindUserByEmail retrieves the user record registered under the given
// email. The lookup is an exact match on the stored value.
//
// Error handling:
//   - sql.ErrNoRows → [ErrNoUserWasFound].
//   - Any other driver or scan failure → wrapped in [ErrScanningRow].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(&foundUser.ID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Kind, &foundUser.CreatedAt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrNoUserWasFound
		default:
			log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	return foundUser, nil
}
