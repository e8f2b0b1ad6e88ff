package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/brunovieira/advocase/internal/db"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "advocase-test.db")
	database, err := db.Open(db.Config{SQLitePath: databasePath})
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

	handler := NewHandler(database, "test-secret-key", time.UTC)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func jsonRequest(t *testing.T, method string, target string, token string, payload any) *http.Request {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	request := httptest.NewRequest(method, target, body)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return request
}

func doJSON(t *testing.T, app *fiber.App, method string, target string, token string, payload any, out any) int {
	t.Helper()

	response, err := app.Test(jsonRequest(t, method, target, token, payload), -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	defer response.Body.Close()

	if out != nil {
		if err := json.NewDecoder(response.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s response: %v", method, target, err)
		}
	}
	return response.StatusCode
}

func registerTestAccount(t *testing.T, app *fiber.App, email string) authResponse {
	t.Helper()

	payload := map[string]string{
		"email":    email,
		"password": "StrongPass1",
		"name":     "Test Lawyer",
	}
	var auth authResponse
	status := doJSON(t, app, http.MethodPost, "/api/auth/register", "", payload, &auth)
	if status != http.StatusOK {
		t.Fatalf("register %s returned status %d", email, status)
	}
	if auth.Token == "" {
		t.Fatalf("register %s returned no token", email)
	}
	return auth
}
