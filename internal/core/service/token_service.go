package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/authware/rbac-service/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// tokenClaims is the JWT payload bound at issuance.
type tokenClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed tokens. The same configured
// secret is used for both directions; there is no revocation list, so a token
// stays valid for its full lifetime once issued.
type TokenService struct {
	secret   []byte
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewTokenService(secret string, tokenTTL time.Duration, log zerolog.Logger) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), tokenTTL: tokenTTL, log: log}
}

// Issue signs a token carrying the user identity and role name, expiring
// tokenTTL after issuance.
func (s *TokenService) Issue(userID, roleName string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		Role:   roleName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature integrity and expiry. Every failure collapses into
// domain.ErrInvalidToken so callers cannot distinguish a bad signature from
// an expired token; the underlying cause is logged here for diagnostics.
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		s.log.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrInvalidToken
	}

	return &domain.TokenClaims{UserID: claims.UserID, Role: claims.Role}, nil
}
