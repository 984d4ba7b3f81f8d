package service

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4) // minimum cost keeps the test fast

	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "pw123" {
		t.Fatalf("hash equals plaintext")
	}
	if !h.Verify("pw123", hash) {
		t.Fatalf("Verify rejected the original password")
	}
	if h.Verify("pw124", hash) {
		t.Fatalf("Verify accepted a different password")
	}
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	h := NewBcryptHasher(4)

	h1, err := h.Hash("same")
	if err != nil {
		t.Fatalf("first Hash: %v", err)
	}
	h2, err := h.Hash("same")
	if err != nil {
		t.Fatalf("second Hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct salted hashes, got equal values")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(4)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("Verify accepted a malformed hash")
	}
	if h.Verify("anything", "") {
		t.Fatalf("Verify accepted an empty hash")
	}
}

func TestNewBcryptHasher_CostClamped(t *testing.T) {
	h := NewBcryptHasher(-1)
	if h.cost != defaultHashCost {
		t.Fatalf("expected cost %d, got %d", defaultHashCost, h.cost)
	}
}
