package models

// Identity is the trusted caller identity derived from a validated session
// token. It exists only for the duration of one request and is the sole input
// for every ownership and role decision downstream.
type Identity struct {
	// Email is the "email" claim of the token.
	Email string `json:"email"`

	// UserID is the "user_id" claim of the token.
	UserID int64 `json:"user_id"`

	// Role is the "role" claim. Empty means a regular user.
	Role string `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
