package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStoreUploadAndRemove(t *testing.T) {
	baseDir := t.TempDir()
	store, err := NewDiskStore(baseDir, "/media/avatars/")
	if err != nil {
		t.Fatalf("create disk store: %v", err)
	}

	location, err := store.Upload(context.Background(), "abc123.png", strings.NewReader("image-bytes"), "image/png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if location != "/media/avatars/abc123.png" {
		t.Fatalf("unexpected location %q", location)
	}

	stored, err := os.ReadFile(filepath.Join(baseDir, "abc123.png"))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(stored) != "image-bytes" {
		t.Fatalf("unexpected file content %q", string(stored))
	}

	if err := store.Remove(context.Background(), location); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(baseDir, "abc123.png")); !os.IsNotExist(err) {
		t.Fatalf("expected file to be gone, stat err: %v", err)
	}
}

func TestDiskStoreRemoveMissingFileIsNotAnError(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/media/avatars")
	if err != nil {
		t.Fatalf("create disk store: %v", err)
	}

	if err := store.Remove(context.Background(), "/media/avatars/never-uploaded.png"); err != nil {
		t.Fatalf("expected missing file to be tolerated, got %v", err)
	}
}

func TestDiskStoreConfinesKeysToBaseDir(t *testing.T) {
	baseDir := t.TempDir()
	store, err := NewDiskStore(baseDir, "/media/avatars")
	if err != nil {
		t.Fatalf("create disk store: %v", err)
	}

	outside := filepath.Join(filepath.Dir(baseDir), "escape.png")
	location, err := store.Upload(context.Background(), "../escape.png", strings.NewReader("x"), "image/png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if location != "/media/avatars/escape.png" {
		t.Fatalf("expected key to be flattened, got %q", location)
	}
	if _, err := os.Stat(outside); !os.IsNotExist(err) {
		t.Fatalf("upload must not write outside the base directory, stat err: %v", err)
	}
	if _, err := os.Stat(filepath.Join(baseDir, "escape.png")); err != nil {
		t.Fatalf("expected file inside base directory: %v", err)
	}

	if _, err := store.Upload(context.Background(), "..", strings.NewReader("x"), "image/png"); err == nil {
		t.Fatal("expected an error for an empty sanitized key")
	}
}
