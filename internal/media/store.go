// Package media stores and removes avatar images on behalf of the account
// subsystem. Implementations are external collaborators: failures during
// cleanup are reported but never roll back an account mutation.
package media

import (
	"context"
	"io"
)

type AvatarStore interface {
	// Upload persists the content under the given key and returns the public
	// location that gets stored on the user record.
	Upload(ctx context.Context, key string, content io.Reader, contentType string) (string, error)
	// Remove deletes a previously uploaded avatar by its stored location.
	// Removing an unknown location is not an error.
	Remove(ctx context.Context, location string) error
}
