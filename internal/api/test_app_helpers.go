package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/terraincognita07/fleemy/internal/db"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "fleemy-test.db")
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

	handler := NewHandler(database, "test-secret-key", time.UTC, 50)

	app := fiber.New()
	handler.RegisterRoutes(app)
	return app, database
}

func jsonRequest(t *testing.T, method string, path string, token string, payload any) *http.Request {
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
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return request
}

func doJSON(t *testing.T, app *fiber.App, request *http.Request, expectedStatus int) map[string]any {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", request.Method, request.URL.Path, err)
	}
	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d (body: %s)",
			request.Method, request.URL.Path, expectedStatus, response.StatusCode, raw)
	}

	if len(raw) == 0 {
		return nil
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("%s %s decode body %q: %v", request.Method, request.URL.Path, raw, err)
	}
	return decoded
}

func doJSONList(t *testing.T, app *fiber.App, request *http.Request, expectedStatus int) []map[string]any {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", request.Method, request.URL.Path, err)
	}
	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d (body: %s)",
			request.Method, request.URL.Path, expectedStatus, response.StatusCode, raw)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("%s %s decode body %q: %v", request.Method, request.URL.Path, raw, err)
	}
	return decoded
}

func registerTestUser(t *testing.T, app *fiber.App, name string) (string, string) {
	t.Helper()

	email := fmt.Sprintf("%s@example.com", name)
	body := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "strong-password",
	}), fiber.StatusCreated)

	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("register %s returned no token", email)
	}
	user, _ := body["user"].(map[string]any)
	uid, _ := user["uid"].(string)
	if uid == "" {
		t.Fatalf("register %s returned no uid", email)
	}
	return token, uid
}

func readAPIError(t *testing.T, app *fiber.App, request *http.Request, expectedStatus int) string {
	t.Helper()

	body := doJSON(t, app, request, expectedStatus)
	message, _ := body["error"].(string)
	if message == "" {
		t.Fatalf("%s %s expected an error message", request.Method, request.URL.Path)
	}
	return message
}
