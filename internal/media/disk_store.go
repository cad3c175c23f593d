package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DiskStore writes avatars under a local directory that the server exposes as
// static files. It is the default store when no object storage is configured.
type DiskStore struct {
	baseDir string
	baseURL string
}

func NewDiskStore(baseDir string, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatar directory: %w", err)
	}
	return &DiskStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (store *DiskStore) Upload(_ context.Context, key string, content io.Reader, _ string) (string, error) {
	fileName := sanitizeKey(key)
	if fileName == "" {
		return "", fmt.Errorf("invalid avatar key %q", key)
	}

	file, err := os.Create(filepath.Join(store.baseDir, fileName))
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("write avatar file: %w", err)
	}
	return store.baseURL + "/" + fileName, nil
}

func (store *DiskStore) Remove(_ context.Context, location string) error {
	fileName := sanitizeKey(path.Base(location))
	if fileName == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(store.baseDir, fileName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove avatar file: %w", err)
	}
	return nil
}

// sanitizeKey keeps stored files confined to the avatar directory.
func sanitizeKey(key string) string {
	cleaned := path.Base(strings.TrimSpace(key))
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return ""
	}
	return cleaned
}
