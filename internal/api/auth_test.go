package api

import (
	"net/http"
	"testing"
)

func TestRegisterReturnsAccountAndToken(t *testing.T) {
	app := newTestApp(t)

	auth := registerTestAccount(t, app, "ana@example.com")
	if auth.ID == "" {
		t.Fatal("expected account id in register response")
	}
	if auth.Email != "ana@example.com" {
		t.Fatalf("expected email echoed back, got %q", auth.Email)
	}
	if auth.Name != "Test Lawyer" {
		t.Fatalf("expected name echoed back, got %q", auth.Name)
	}
}

func TestRegisterRejectsDuplicateEmailWith400(t *testing.T) {
	app := newTestApp(t)
	registerTestAccount(t, app, "ana@example.com")

	payload := map[string]string{"email": "ana@example.com", "password": "OtherPass2", "name": "Impostor"}
	var body map[string]string
	status := doJSON(t, app, http.MethodPost, "/api/auth/register", "", payload, &body)
	if status != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", status)
	}
	if body["error"] != "email already registered" {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestRegisterValidatesRequiredFields(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{name: "missing email", payload: map[string]string{"password": "StrongPass1", "name": "Ana"}},
		{name: "missing password", payload: map[string]string{"email": "ana@example.com", "name": "Ana"}},
		{name: "missing name", payload: map[string]string{"email": "ana@example.com", "password": "StrongPass1"}},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			status := doJSON(t, app, http.MethodPost, "/api/auth/register", "", testCase.payload, nil)
			if status != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", status)
			}
		})
	}
}

func TestLoginSucceedsWithCorrectCredentials(t *testing.T) {
	app := newTestApp(t)
	registered := registerTestAccount(t, app, "ana@example.com")

	payload := map[string]string{"email": "ana@example.com", "password": "StrongPass1"}
	var auth authResponse
	status := doJSON(t, app, http.MethodPost, "/api/auth/login", "", payload, &auth)
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if auth.ID != registered.ID {
		t.Fatalf("expected account %s, got %s", registered.ID, auth.ID)
	}
	if auth.Token == "" {
		t.Fatal("expected login token")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app := newTestApp(t)
	registerTestAccount(t, app, "ana@example.com")

	var wrongPassword map[string]string
	wrongPasswordStatus := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "ana@example.com", "password": "WrongPass1"}, &wrongPassword)

	var unknownEmail map[string]string
	unknownEmailStatus := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "nobody@example.com", "password": "StrongPass1"}, &unknownEmail)

	if wrongPasswordStatus != http.StatusUnauthorized || unknownEmailStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401 for both failures, got %d and %d", wrongPasswordStatus, unknownEmailStatus)
	}
	if wrongPassword["error"] != unknownEmail["error"] {
		t.Fatalf("expected identical error bodies, got %q and %q", wrongPassword["error"], unknownEmail["error"])
	}
}

func TestLoginThrottlesRepeatedFailures(t *testing.T) {
	app := newTestApp(t)
	registerTestAccount(t, app, "ana@example.com")

	payload := map[string]string{"email": "ana@example.com", "password": "WrongPass1"}
	for attempt := 0; attempt < loginAttemptLimit; attempt++ {
		if status := doJSON(t, app, http.MethodPost, "/api/auth/login", "", payload, nil); status != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected status 401, got %d", attempt, status)
		}
	}

	if status := doJSON(t, app, http.MethodPost, "/api/auth/login", "", payload, nil); status != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 after repeated failures, got %d", status)
	}
}

func TestProtectedEndpointsRequireValidToken(t *testing.T) {
	app := newTestApp(t)

	if status := doJSON(t, app, http.MethodGet, "/api/clients", "", nil, nil); status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}
	if status := doJSON(t, app, http.MethodGet, "/api/clients", "not-a-token", nil, nil); status != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", status)
	}
	if status := doJSON(t, app, http.MethodGet, "/api/dashboard", "", nil, nil); status != http.StatusUnauthorized {
		t.Fatalf("expected 401 on dashboard without token, got %d", status)
	}
}

func TestHealthEndpointIsPublic(t *testing.T) {
	app := newTestApp(t)

	var body map[string]string
	status := doJSON(t, app, http.MethodGet, "/healthz", "", nil, &body)
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body: %#v", body)
	}
}
