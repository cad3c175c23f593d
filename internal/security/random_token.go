package security

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

var errNonPositiveLength = errors.New("length must be positive")

// RandomHexToken returns byteLength random bytes hex-encoded, so the returned
// string carries byteLength*8 bits of entropy.
func RandomHexToken(byteLength int) (string, error) {
	if byteLength <= 0 {
		return "", errNonPositiveLength
	}

	value := make([]byte, byteLength)
	if _, err := rand.Read(value); err != nil {
		return "", err
	}
	return hex.EncodeToString(value), nil
}
