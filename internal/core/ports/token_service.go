package ports

import "github.com/authware/rbac-service/internal/core/domain"

// TokenService issues and verifies signed, expiring bearer tokens.
type TokenService interface {
	// Issue signs a token binding the user identity and role name.
	Issue(userID, roleName string) (string, error)
	// Verify checks signature and expiry. Any unusable token yields
	// domain.ErrInvalidToken; the reason is not distinguishable to callers.
	Verify(token string) (*domain.TokenClaims, error)
}

// PasswordHasher is a one-way credential transform.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. A malformed
	// hash is a mismatch, not an error.
	Verify(plaintext, hash string) bool
}
