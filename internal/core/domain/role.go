package domain

import "errors"

const (
	RoleAdmin     = "Admin"
	RoleUser      = "User"
	RoleModerator = "Moderator"
)

var ErrRoleNotFound = errors.New("role not found")
var ErrInvalidRole = errors.New("invalid role")

// Role is one entry of the closed, admin-seeded vocabulary. Names are
// case-sensitive and unique; roles are created once at startup and never
// deleted.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultRoles returns the seeded vocabulary in seeding order.
func DefaultRoles() []string {
	return []string{RoleAdmin, RoleUser, RoleModerator}
}
