package ports

import (
	"context"

	"github.com/authware/rbac-service/internal/core/domain"
)

// RoleRepository defines the interface for role persistence.
type RoleRepository interface {
	// FindByName performs a case-sensitive exact match.
	// Returns domain.ErrRoleNotFound when the name is unknown.
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	// EnsureRole creates the role if absent and returns it. Idempotent:
	// a concurrent create by another process is treated as success.
	EnsureRole(ctx context.Context, name string) (*domain.Role, error)
}

// RoleRegistry is the seeded role vocabulary consumed by the auth service.
type RoleRegistry interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	SeedDefaults(ctx context.Context, names []string) error
}
