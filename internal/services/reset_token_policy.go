package services

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/pallasgreen/issuedesk/internal/security"
)

// Reset tokens carry 160 bits of entropy and stay valid for a fixed window.
const (
	resetTokenByteLength = 20
	ResetTokenTTL        = 10 * time.Minute
)

// GenerateResetToken returns the raw token handed to the account holder and
// the hash that is persisted. The raw value never touches storage.
func GenerateResetToken() (raw string, hash string, err error) {
	raw, err = security.RandomHexToken(resetTokenByteLength)
	if err != nil {
		return "", "", err
	}
	return raw, HashResetToken(raw), nil
}

func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
