package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/authware/rbac-service/internal/core/domain"
	"github.com/authware/rbac-service/internal/core/ports"
)

// storeTimeout bounds each persistence round trip so a stalled store surfaces
// as a deadline error instead of hanging the request.
const storeTimeout = 5 * time.Second

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRegistry
	hasher ports.PasswordHasher
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	roles ports.RoleRegistry,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, roles: roles, hasher: hasher, tokens: tokens, log: log}
}

// Register creates a user bound to a seeded role. An unknown role name fails
// with domain.ErrInvalidRole; a taken email with domain.ErrEmailExists.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	if name == "" || email == "" || password == "" || role == "" {
		return nil, domain.ErrInvalidCredentials
	}

	lookupCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	existingRole, err := s.roles.FindByName(lookupCtx, role)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrInvalidRole
		}
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		RoleID:       existingRole.ID,
		RoleName:     existingRole.Name,
		CreatedAt:    time.Now().UTC(),
	}

	createCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	created, err := s.users.Create(createCtx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.RoleName).Msg("user registered")
	return created, nil
}

// Login authenticates by email and password and issues a bearer token.
// An unknown email yields domain.ErrUserNotFound; a wrong password yields
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	findCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	user, err := s.users.FindByEmail(findCtx, email)
	if err != nil {
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.RoleName)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.RoleName).Msg("login succeeded")
	return token, user, nil
}
