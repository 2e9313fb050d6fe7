package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fyan514/go-todo-service/internal/logger"
	"github.com/fyan514/go-todo-service/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and profile mutation against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Email, user.Username, user.FirstName, user.LastName,
		user.PhoneNumber, user.HashedPassword, nullableRole(user.Role), user.IsActive)

	var created models.User
	var role sql.NullString
	err := row.Scan(&created.UserID, &created.Email, &created.Username, &created.FirstName,
		&created.LastName, &created.PhoneNumber, &created.HashedPassword, &role,
		&created.IsActive, &created.CreatedAt)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("duplicate email")
			return models.User{}, ErrEmailAlreadyExists
		case "":
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, err
		default:
			log.Err(err).
				Str("func", "*userRepository.CreateUser").
				Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
				Msg("unexpected DB error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}
	created.Role = role.String

	return created, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// value, or [ErrNoUserWasFound] if no such account exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves the user record with the given identifier, or
// [ErrNoUserWasFound] if no such account exists.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	var role sql.NullString
	row := r.db.QueryRowContext(ctx, query, arg)

	err := row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.Username, &foundUser.FirstName,
		&foundUser.LastName, &foundUser.PhoneNumber, &foundUser.HashedPassword, &role,
		&foundUser.IsActive, &foundUser.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		if code := postgresError(err); code != "" {
			log.Err(err).
				Str("func", "*userRepository.findUser").
				Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
				Msg("unexpected DB error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, err
	}
	foundUser.Role = role.String

	return foundUser, nil
}

// UpdatePassword replaces the stored password digest of the given user.
// Returns [ErrNoUserWasFound] when the user does not exist.
func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPassword, hashedPassword, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UpdateProfile replaces the mutable profile fields of the given user.
// Returns [ErrEmailAlreadyExists] when the new email collides with another
// account and [ErrNoUserWasFound] when the user does not exist.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, profile models.ChangeProfileRequest) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserProfile,
		profile.FirstName, profile.LastName, profile.PhoneNumber, profile.Email, userID)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// nullableRole maps an empty role string to SQL NULL so that regular users
// are stored without a role value, matching the historical schema.
func nullableRole(role string) sql.NullString {
	return sql.NullString{String: role, Valid: role != ""}
}
