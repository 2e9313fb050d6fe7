package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt digest of the given plaintext
// password. The salt is generated per call, so hashing the same plaintext
// twice yields different digests. The digest is safe to store as-is.
//
// cost controls the bcrypt work factor; passing 0 (or any value below
// bcrypt.MinCost) falls back to bcrypt.DefaultCost.
//
// Returns an error if the plaintext is empty or exceeds bcrypt's 72-byte
// input limit.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("empty password cannot be hashed")
	}

	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt digest.
//
// It returns false both on a mismatch and on a malformed digest — it never
// panics and exposes no error detail, so a corrupted stored hash behaves
// exactly like a wrong password.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
