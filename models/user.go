package models

import "time"

// RoleAdmin is the role value that grants access to the /admin endpoints.
// Any other value (including empty) is treated as a regular user.
const RoleAdmin = "admin"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Email is the unique address the user logs in with.
	Email string `json:"email"`

	// Username is a display handle, not used for authentication.
	Username string `json:"username"`

	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`

	// HashedPassword stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext,
	// and is never serialized to JSON.
	HashedPassword string `json:"-"`

	// Role is "admin" for administrators; empty or anything else means
	// a regular user.
	Role string `json:"role"`

	// IsActive marks whether the account may authenticate.
	// Accounts are created active and are never deleted.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
