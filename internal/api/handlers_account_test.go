package api

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pallasgreen/issuedesk/internal/models"
	"gorm.io/gorm"
)

func TestDeleteAccountRemovesUserAndSession(t *testing.T) {
	app, database, _ := newTestApp(t)
	user := createTestUser(t, database, "jane@x.com", "secret1")
	authCookie := loginAndExtractAuthCookie(t, app, "jane@x.com", "secret1")

	response := sendJSON(t, app, http.MethodDelete, "/api/account", authCookie, nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", response.StatusCode, readAPIError(t, response))
	}

	cleared := false
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected deletion to clear the auth cookie")
	}

	var stored models.User
	err := database.First(&stored, user.ID).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected user row to be gone, got %v", err)
	}

	login := postJSON(t, app, "/api/auth/login", "", fiber.Map{
		"email":    "jane@x.com",
		"password": "secret1",
	})
	defer login.Body.Close()
	if login.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected login after deletion to fail, got %d", login.StatusCode)
	}
}

func TestDeleteAccountRemovesCustomAvatar(t *testing.T) {
	app, database, avatarDir := newTestApp(t)
	createTestUser(t, database, "jane@x.com", "secret1")
	authCookie := loginAndExtractAuthCookie(t, app, "jane@x.com", "secret1")

	location := uploadAvatar(t, app, authCookie, "portrait.png", []byte("image-bytes"))
	avatarFile := filepath.Join(avatarDir, filepath.Base(location))
	if _, err := os.Stat(avatarFile); err != nil {
		t.Fatalf("expected avatar on disk before deletion: %v", err)
	}

	response := sendJSON(t, app, http.MethodDelete, "/api/account", authCookie, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	if _, err := os.Stat(avatarFile); !os.IsNotExist(err) {
		t.Fatalf("expected avatar file to be removed, stat err: %v", err)
	}
}

func TestDeleteAccountLeavesIssueRows(t *testing.T) {
	app, database, _ := newTestApp(t)
	user := createTestUser(t, database, "jane@x.com", "secret1")
	if err := database.Create(&models.Issue{CreatorID: user.ID, Title: "orphan"}).Error; err != nil {
		t.Fatalf("create issue: %v", err)
	}
	authCookie := loginAndExtractAuthCookie(t, app, "jane@x.com", "secret1")

	response := sendJSON(t, app, http.MethodDelete, "/api/account", authCookie, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.Issue{}).Where("creator_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count issues: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected issue rows to survive account deletion, got %d", count)
	}
}

func TestDeleteAccountRequiresAuth(t *testing.T) {
	app, _, _ := newTestApp(t)

	response := sendJSON(t, app, http.MethodDelete, "/api/account", "", nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", response.StatusCode)
	}
}
