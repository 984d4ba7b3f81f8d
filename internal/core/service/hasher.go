package service

import "golang.org/x/crypto/bcrypt"

// defaultHashCost is the bcrypt work factor. Raising it slows brute-force
// attacks and every login in equal measure.
const defaultHashCost = 10

// BcryptHasher implements ports.PasswordHasher on top of bcrypt. Hashes are
// salted per call, so two hashes of the same password never compare equal.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher at the given cost. Costs outside bcrypt's
// supported range fall back to defaultHashCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = defaultHashCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. bcrypt's comparison is
// constant-time over the digest; a malformed hash yields false, never a panic.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
