package store

import (
	"context"

	"github.com/fyan514/go-todo-service/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given ID or
	// ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdatePassword replaces the stored password digest of the given user.
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error

	// UpdateProfile replaces the mutable profile fields (first/last name,
	// phone number, email) of the given user.
	UpdateProfile(ctx context.Context, userID int64, profile models.ChangeProfileRequest) error
}

// TodoRepository is the data-access contract for todo items.
//
// The owner-scoped methods carry the caller's user ID in the SQL predicate,
// so a todo belonging to another user behaves exactly like a missing one.
// ListAll and DeleteByID are the admin operations and apply no owner filter.
type TodoRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Todo, error)
	FindByIDAndOwner(ctx context.Context, todoID, ownerID int64) (models.Todo, error)
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)
	Update(ctx context.Context, todo models.Todo) error
	DeleteByIDAndOwner(ctx context.Context, todoID, ownerID int64) error

	ListAll(ctx context.Context) ([]models.Todo, error)
	DeleteByID(ctx context.Context, todoID int64) error
}
