package service

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/authware/rbac-service/internal/core/domain"
)

func issueTestToken(t *testing.T, svc *TokenService, userID, role string) string {
	t.Helper()
	token, err := svc.Issue(userID, role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestAuthorizer_Allows(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour, zerolog.Nop())
	gate := NewAuthorizer(tokens)
	token := issueTestToken(t, tokens, "user_1", domain.RoleUser)

	d := gate.Authorize(token, []string{domain.RoleUser, domain.RoleAdmin})
	if !d.Allowed {
		t.Fatalf("expected allow, got deny(%s)", d.Reason)
	}
	if d.UserID != "user_1" || d.Role != domain.RoleUser {
		t.Fatalf("unexpected identity: %+v", d)
	}
}

func TestAuthorizer_ForbidsRoleNotPermitted(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour, zerolog.Nop())
	gate := NewAuthorizer(tokens)
	token := issueTestToken(t, tokens, "user_1", domain.RoleUser)

	d := gate.Authorize(token, []string{domain.RoleAdmin})
	if d.Allowed {
		t.Fatalf("expected deny, got allow")
	}
	if d.Reason != DenyForbidden {
		t.Fatalf("expected reason %q, got %q", DenyForbidden, d.Reason)
	}
}

func TestAuthorizer_NoHierarchy(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour, zerolog.Nop())
	gate := NewAuthorizer(tokens)

	// Admin does not implicitly satisfy a User-only check.
	token := issueTestToken(t, tokens, "admin_1", domain.RoleAdmin)
	if d := gate.Authorize(token, []string{domain.RoleUser}); d.Allowed {
		t.Fatalf("expected deny for admin against user-only set")
	}
}

func TestAuthorizer_DeniesInvalidToken(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour, zerolog.Nop())
	gate := NewAuthorizer(tokens)

	for _, token := range []string{"", "garbage"} {
		d := gate.Authorize(token, []string{domain.RoleUser})
		if d.Allowed {
			t.Fatalf("token %q: expected deny", token)
		}
		if d.Reason != DenyUnauthenticated {
			t.Fatalf("token %q: expected reason %q, got %q", token, DenyUnauthenticated, d.Reason)
		}
	}
}

func TestAuthorizer_EmptyPermittedSetAdmitsAnyAuthenticated(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour, zerolog.Nop())
	gate := NewAuthorizer(tokens)
	token := issueTestToken(t, tokens, "user_1", domain.RoleModerator)

	if d := gate.Authorize(token, nil); !d.Allowed {
		t.Fatalf("expected allow for any authenticated caller, got deny(%s)", d.Reason)
	}
}
