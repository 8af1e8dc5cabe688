package utils

import "testing"

func TestHashString_Deterministic(t *testing.T) {
	first := HashString("password123", "secret-key")
	second := HashString("password123", "secret-key")

	if first == "" {
		t.Fatal("expected non-empty digest")
	}
	if first != second {
		t.Errorf("expected deterministic digest, got %q and %q", first, second)
	}
}

func TestHashString_KeyChangesDigest(t *testing.T) {
	withKeyA := HashString("password123", "key-a")
	withKeyB := HashString("password123", "key-b")

	if withKeyA == withKeyB {
		t.Error("expected different digests for different keys")
	}
}

func TestHashString_DataChangesDigest(t *testing.T) {
	first := HashString("password123", "key")
	second := HashString("password124", "key")

	if first == second {
		t.Error("expected different digests for different data")
	}
}

func TestHashString_HexLength(t *testing.T) {
	digest := HashString("anything", "key")

	// SHA-256 digest is 32 bytes, 64 hex characters
	if len(digest) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(digest))
	}
}
