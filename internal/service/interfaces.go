package service

import (
	"context"

	"github.com/fyan514/go-todo-service/models"
)

// AuthService handles user registration, credential verification, and the
// session token lifecycle.
type AuthService interface {
	// RegisterUser creates a new active account with a hashed password.
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login verifies the email/password pair and returns the matching
	// account. Wrong password and unknown email both surface as errors the
	// transport layer maps to a single 401.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns the trusted
	// caller identity.
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
}

// TodoService implements the todo operations. The owner-scoped methods take
// the caller identity and never expose another user's items; the admin
// methods apply no owner filter and must only be reachable behind the admin
// guard.
type TodoService interface {
	ListOwn(ctx context.Context, identity models.Identity) ([]models.Todo, error)
	GetOwn(ctx context.Context, identity models.Identity, todoID int64) (models.Todo, error)
	Create(ctx context.Context, identity models.Identity, request models.TodoRequest) (models.Todo, error)
	Update(ctx context.Context, identity models.Identity, todoID int64, request models.TodoRequest) error
	Delete(ctx context.Context, identity models.Identity, todoID int64) error

	ListAll(ctx context.Context) ([]models.Todo, error)
	DeleteAny(ctx context.Context, todoID int64) error
}

// UserService implements the profile operations of the authenticated caller.
type UserService interface {
	Profile(ctx context.Context, identity models.Identity) (models.UserResponse, error)

	// ChangePassword re-verifies the current password against the stored
	// digest before accepting the new one.
	ChangePassword(ctx context.Context, identity models.Identity, request models.ChangePasswordRequest) error

	ChangeProfile(ctx context.Context, identity models.Identity, request models.ChangeProfileRequest) error
}
