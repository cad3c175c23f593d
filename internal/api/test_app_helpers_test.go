package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pallasgreen/issuedesk/internal/db"
	"github.com/pallasgreen/issuedesk/internal/media"
	"github.com/pallasgreen/issuedesk/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const avatarRoutePrefix = "/media/avatars"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "issuedesk-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	avatarDir := t.TempDir()
	avatars, err := media.NewDiskStore(avatarDir, avatarRoutePrefix)
	if err != nil {
		t.Fatalf("create avatar store: %v", err)
	}

	app := fiber.New()
	handler := NewHandler(database, "test-secret-key", avatars, zerolog.Nop(), false)
	RegisterRoutes(app, handler)

	return app, database, avatarDir
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := &models.User{
		Firstname:    "Jane",
		Lastname:     "Doe",
		Email:        email,
		PasswordHash: string(hash),
		Avatar:       models.DefaultAvatar,
		Role:         models.RoleUser,
	}
	if err := database.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := postJSON(t, app, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected login to succeed, got %d: %s", response.StatusCode, string(body))
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("expected auth cookie in login response")
	return ""
}

func postJSON(t *testing.T, app *fiber.App, path string, authCookie string, payload any) *http.Response {
	t.Helper()
	return sendJSON(t, app, http.MethodPost, path, authCookie, payload)
}

func sendJSON(t *testing.T, app *fiber.App, method string, path string, authCookie string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	decoded := map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
	return decoded
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()

	decoded := decodeBody(t, response)
	if success, ok := decoded["success"].(bool); !ok || success {
		t.Fatalf("expected failed response envelope, got %v", decoded)
	}
	message, ok := decoded["error"].(string)
	if !ok {
		t.Fatalf("expected error message in response, got %v", decoded)
	}
	return message
}

func bodyContains(t *testing.T, response *http.Response, fragment string) string {
	t.Helper()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	body := string(raw)
	if !strings.Contains(body, fragment) {
		t.Fatalf("expected body to contain %q, got: %s", fragment, body)
	}
	return body
}
