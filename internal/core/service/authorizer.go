package service

import "github.com/authware/rbac-service/internal/core/ports"

// Deny reasons surfaced to the request layer.
const (
	DenyUnauthenticated = "unauthenticated"
	DenyForbidden       = "forbidden"
)

// Decision is the outcome of one authorization check. All fields except
// Allowed are only meaningful on their respective branch: UserID/Role on
// allow, Reason on deny.
type Decision struct {
	Allowed bool
	UserID  string
	Role    string
	Reason  string
}

// Authorizer gates requests on a verified token and a flat permitted-role
// set. It holds no mutable state; a decision is a pure function of the
// token, the permitted set, the clock, and the verification secret.
type Authorizer struct {
	tokens ports.TokenService
}

func NewAuthorizer(tokens ports.TokenService) *Authorizer {
	return &Authorizer{tokens: tokens}
}

// Authorize verifies the token and checks the decoded role against permitted.
// Membership is exact string match; no role implies another. An empty
// permitted set admits any authenticated caller.
func (a *Authorizer) Authorize(token string, permitted []string) Decision {
	claims, err := a.tokens.Verify(token)
	if err != nil {
		return Decision{Reason: DenyUnauthenticated}
	}

	if len(permitted) > 0 {
		ok := false
		for _, role := range permitted {
			if role == claims.Role {
				ok = true
				break
			}
		}
		if !ok {
			return Decision{Reason: DenyForbidden}
		}
	}

	return Decision{Allowed: true, UserID: claims.UserID, Role: claims.Role}
}
