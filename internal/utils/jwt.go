package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fyan514/go-todo-service/models"
	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors returned by ValidateJWTToken. Callers can match against
// them with [errors.Is] to distinguish the failure cause in logs and tests;
// the HTTP layer intentionally collapses all of them into a single 401.
var (
	// ErrTokenExpired is returned when the "exp" claim lies in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalidSignature is returned when the token signature does
	// not verify against the process-wide sign key, i.e. the token was
	// tampered with or signed with a different secret.
	ErrTokenInvalidSignature = errors.New("token signature is invalid")

	// ErrTokenMalformedClaims is returned when the token parses and
	// verifies but the "email" or "user_id" claim is missing.
	ErrTokenMalformedClaims = errors.New("token claims are malformed")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token carries the application claims the authorization layer depends on
// ("email", "user_id", "role") together with the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Role may be empty for regular users; all other parameters are required.
//
// Parameters:
//
//	issuer        - identifier of the token issuer (e.g. service name)
//	identity      - the email, user ID, and role encoded into the claims
//	tokenDuration - how long the token remains valid
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Returns:
//
//	models.Token - contains the signed token string, the jwt.Token object,
//	               and the lifetime in whole seconds for client display
//	error        - non-nil if parameters are invalid or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("todo-service", identity, 10*time.Minute, "secret")
func GenerateJWTToken(issuer string, identity models.Identity, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || identity.Email == "" || identity.UserID == 0 || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.TokenClaims{
		Email:  identity.Email,
		UserID: identity.UserID,
		Role:   identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		ExpiresIn:    int64(tokenDuration.Seconds()),
	}, nil
}

// ValidateJWTToken validates the given JWT token string and extracts the
// caller identity from its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HMAC-SHA256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Presence of the "email" and "user_id" application claims
//
// Parameters:
//
//	tokenString   - the raw signed JWT string to validate and parse
//	tokenSignKey  - secret key used to verify the token signature
//	tokenIssuer   - expected issuer value to validate against the iss claim
//
// Returns:
//
//	models.Identity - the trusted caller identity (role may be empty)
//	error           - ErrTokenExpired, ErrTokenInvalidSignature, or
//	                  ErrTokenMalformedClaims depending on the failure
//
// Example usage:
//
//	identity, err := utils.ValidateJWTToken(rawToken, "secret", "todo-service")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Identity, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Identity{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Identity{}, ErrTokenInvalidSignature
		default:
			return models.Identity{}, fmt.Errorf("%w: %w", ErrTokenMalformedClaims, err)
		}
	}

	if claims.Email == "" || claims.UserID == 0 {
		return models.Identity{}, ErrTokenMalformedClaims
	}

	return claims.Identity(), nil
}

// ParseBearerToken extracts the token part from an
// "Authorization: Bearer <token>" header value. The scheme word is matched
// case-insensitively; any other scheme is rejected.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
