package domain

import "errors"

// ErrInvalidToken is the single failure surfaced for any unusable token:
// malformed, bad signature, expired, or missing. Callers never learn which;
// the precise reason stays in server-side diagnostics.
var ErrInvalidToken = errors.New("invalid token")

var ErrForbidden = errors.New("access forbidden")

// TokenClaims is the identity a verified token proves.
type TokenClaims struct {
	UserID string
	Role   string
}
