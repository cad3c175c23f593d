package services

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 128

	// bcrypt reads at most 72 bytes of input; longer accepted passwords are
	// truncated to that prefix for hashing and verification alike.
	bcryptInputLimit = 72
)

var ErrPasswordLength = errors.New("password must be between 6 and 128 characters")

func ValidatePasswordLength(password string) error {
	length := utf8.RuneCountInString(password)
	if length < minPasswordLength || length > maxPasswordLength {
		return ErrPasswordLength
	}
	return nil
}

func bcryptInput(password string) []byte {
	raw := []byte(password)
	if len(raw) > bcryptInputLimit {
		raw = raw[:bcryptInputLimit]
	}
	return raw
}

// HashPassword bcrypt-hashes a password that already passed validation.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
