package security

import "testing"

func TestRandomHexTokenLengthAndUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		token, err := RandomHexToken(20)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}
		if len(token) != 40 {
			t.Fatalf("expected 40 hex chars, got %d", len(token))
		}
		if seen[token] {
			t.Fatalf("token %q repeated", token)
		}
		seen[token] = true
	}
}

func TestRandomHexTokenRejectsNonPositiveLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		if _, err := RandomHexToken(length); err == nil {
			t.Fatalf("expected error for length %d", length)
		}
	}
}
