package integration

import (
	"net/http"
	"testing"
)

func TestAuthFlow_RegisterLoginProfile(t *testing.T) {
	app := setupApp(t)

	token, userID := app.registerUser(t, "maria@test.com", "password123")
	if token == "" {
		t.Fatal("expected a token after registration")
	}
	if userID == 0 {
		t.Fatal("expected a user ID after registration")
	}

	// Login with the same credentials
	loginToken := app.loginUser(t, "maria@test.com", "password123")

	// Fetch the profile using the login token
	rec := app.request("GET", "/api/v1/profile", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	if user["email"].(string) != "maria@test.com" {
		t.Errorf("expected email maria@test.com, got %v", user["email"])
	}
	if user["is_verified"].(bool) {
		t.Error("expected a freshly registered user to be unverified")
	}
}

func TestAuthFlow_DuplicateEmail(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "dup@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/register",
		`{"email":"dup@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "DUPLICATE_EMAIL" {
		t.Errorf("expected DUPLICATE_EMAIL, got %s", code)
	}
}

func TestAuthFlow_InvalidCredentials(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "login@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"login@test.com","password":"wrong-password"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS, got %s", code)
	}

	// Unknown email returns the same error
	rec = app.request("POST", "/api/v1/auth/login",
		`{"email":"nobody@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthFlow_ProtectedRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{"/api/v1/profile", "/api/v1/questionnaires", "/api/v1/budgets", "/api/v1/transactions"} {
		rec := app.request("GET", path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 for %s without token, got %d", path, rec.Code)
		}
	}
}
