package services

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/pallasgreen/issuedesk/internal/models"
)

const (
	minFirstnameLength = 2
	minLastnameLength  = 3
	maxNameLength      = 64
)

var (
	ErrFirstnameInvalid = errors.New("firstname must be at least 2 characters")
	ErrLastnameInvalid  = errors.New("lastname must be at least 3 characters")
	ErrEmailInvalid     = errors.New("invalid email")
	ErrRoleInvalid      = errors.New("invalid role")
)

// NormalizeAccountEmail lowercases, trims and syntax-checks an email address.
// It returns the bare address, so a display-name form like
// "jane doe <jane@x.com>" collapses to "jane@x.com" and cannot coexist with
// it as a separate account. Anything that does not parse yields the empty
// string.
func NormalizeAccountEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil {
		return ""
	}
	return parsed.Address
}

func ValidateFirstname(raw string) (string, error) {
	firstname := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(firstname)
	if length < minFirstnameLength || length > maxNameLength {
		return "", ErrFirstnameInvalid
	}
	return firstname, nil
}

func ValidateLastname(raw string) (string, error) {
	lastname := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(lastname)
	if length < minLastnameLength || length > maxNameLength {
		return "", ErrLastnameInvalid
	}
	return lastname, nil
}

// ValidateRole defaults an empty role to the regular user role.
func ValidateRole(raw string) (string, error) {
	role := strings.TrimSpace(raw)
	switch role {
	case "":
		return models.RoleUser, nil
	case models.RoleUser, models.RoleAdmin:
		return role, nil
	default:
		return "", ErrRoleInvalid
	}
}
