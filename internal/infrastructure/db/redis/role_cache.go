package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/authware/rbac-service/internal/core/domain"
)

const roleCacheTTL = time.Hour

// RoleCache caches role lookups by name. The vocabulary is immutable after
// seeding, so a stale entry can only ever equal the stored value; the TTL is
// a safety net, not a consistency mechanism.
// Key format: role:<name>
type RoleCache struct {
	client *redis.Client
}

// NewRoleCache creates a RoleCache wrapping the given Redis client.
func NewRoleCache(client *redis.Client) *RoleCache {
	return &RoleCache{client: client}
}

// Get returns the cached role, or nil on a miss.
func (c *RoleCache) Get(ctx context.Context, name string) (*domain.Role, error) {
	raw, err := c.client.Get(ctx, c.key(name)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("role cache get: %w", err)
	}

	var role domain.Role
	if err := json.Unmarshal(raw, &role); err != nil {
		return nil, fmt.Errorf("role cache decode: %w", err)
	}
	return &role, nil
}

// Put stores the role (expires after roleCacheTTL).
func (c *RoleCache) Put(ctx context.Context, role *domain.Role) error {
	raw, err := json.Marshal(role)
	if err != nil {
		return fmt.Errorf("role cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(role.Name), raw, roleCacheTTL).Err()
}

func (c *RoleCache) key(name string) string {
	return fmt.Sprintf("role:%s", name)
}
