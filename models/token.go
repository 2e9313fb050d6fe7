package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claims set carried by every session token.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (exp, iat, iss)
// and adds the application claims the authorization layer depends on:
// "email", "user_id" and "role". A token is only considered valid when both
// Email and UserID are present; Role may be empty for regular users.
type TokenClaims struct {
	// Email is the address of the user the token was issued for.
	Email string `json:"email"`

	// UserID is the identifier of the user the token was issued for.
	UserID int64 `json:"user_id"`

	// Role is "admin" for administrators, empty otherwise.
	// Serialized as null when absent, matching the historical wire format.
	Role string `json:"role,omitempty"`

	jwt.RegisteredClaims
}

// Identity converts the claims into the request-scoped [Identity] used for
// all downstream ownership and role checks.
func (c *TokenClaims) Identity() Identity {
	return Identity{
		Email:  c.Email,
		UserID: c.UserID,
		Role:   c.Role,
	}
}

// Token wraps an issued JWT with its compact serialized form
// (header.payload.signature) ready to be transmitted in HTTP responses.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// ExpiresIn is the token lifetime in seconds, reported to clients in
	// the login response.
	ExpiresIn int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
