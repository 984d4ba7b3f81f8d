package ports

import (
	"context"

	"github.com/authware/rbac-service/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Email uniqueness
// is enforced by the store itself, never by a check-then-insert in callers.
type UserRepository interface {
	// Create persists a new user and returns the stored record.
	// Returns domain.ErrEmailExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns the user with the role name already resolved.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
