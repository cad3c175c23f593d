package services

import (
	"encoding/hex"
	"testing"
)

func TestGenerateResetTokenShape(t *testing.T) {
	raw, hash, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("generate reset token: %v", err)
	}

	if len(raw) != resetTokenByteLength*2 {
		t.Fatalf("expected %d hex characters, got %d", resetTokenByteLength*2, len(raw))
	}
	if _, err := hex.DecodeString(raw); err != nil {
		t.Fatalf("expected hex token, got %q", raw)
	}
	if hash == raw {
		t.Fatal("stored hash must differ from the raw token")
	}
	if hash != HashResetToken(raw) {
		t.Fatal("hash must be reproducible from the raw token")
	}
}

func TestGenerateResetTokenIsUnique(t *testing.T) {
	seen := make(map[string]struct{}, 64)
	for i := 0; i < 64; i++ {
		raw, _, err := GenerateResetToken()
		if err != nil {
			t.Fatalf("generate reset token: %v", err)
		}
		if _, duplicate := seen[raw]; duplicate {
			t.Fatalf("duplicate token generated: %q", raw)
		}
		seen[raw] = struct{}{}
	}
}
