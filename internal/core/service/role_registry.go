package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/authware/rbac-service/internal/core/domain"
	"github.com/authware/rbac-service/internal/core/ports"
)

// RoleCache abstracts the lookup cache (Redis). A nil result with a nil error
// means a miss.
type RoleCache interface {
	Get(ctx context.Context, name string) (*domain.Role, error)
	Put(ctx context.Context, role *domain.Role) error
}

// RoleRegistry serves the closed role vocabulary. Lookups hit the cache
// first; the cache is best-effort and never fails a request on its own.
type RoleRegistry struct {
	repo  ports.RoleRepository
	cache RoleCache
	log   zerolog.Logger
}

// NewRoleRegistry returns a registry over repo. cache may be nil.
func NewRoleRegistry(repo ports.RoleRepository, cache RoleCache, log zerolog.Logger) *RoleRegistry {
	return &RoleRegistry{repo: repo, cache: cache, log: log}
}

// FindByName resolves a role by exact, case-sensitive name.
func (r *RoleRegistry) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	if r.cache != nil {
		role, err := r.cache.Get(ctx, name)
		if err != nil {
			r.log.Warn().Err(err).Str("role", name).Msg("role cache read failed, falling back to store")
		} else if role != nil {
			return role, nil
		}
	}

	role, err := r.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Put(ctx, role); err != nil {
			r.log.Warn().Err(err).Str("role", name).Msg("role cache write failed")
		}
	}
	return role, nil
}

// SeedDefaults creates each named role if absent, in order. Safe to run on
// every startup and under concurrent first runs: an "already exists" outcome
// is success.
func (r *RoleRegistry) SeedDefaults(ctx context.Context, names []string) error {
	for _, name := range names {
		role, err := r.repo.EnsureRole(ctx, name)
		if err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
		r.log.Info().Str("role", role.Name).Str("role_id", role.ID).Msg("role seeded")
	}
	return nil
}
