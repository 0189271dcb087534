package auth

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/collegefinder/api/config"
	authutil "github.com/collegefinder/api/utils/auth"
	"github.com/gofiber/fiber/v2"
)

// newAdminLoginApp wires the login handler without a database. The env
// admin path never reads the users table, so a nil DB doubles as a guard
// that the admin check short-circuits before any query.
func newAdminLoginApp() *fiber.App {
	env := &config.EnviornmentVariable{
		ADMIN_EMAIL:    "admin@example.com",
		ADMIN_PASSWORD: "super-secret-admin",
	}
	jwtManager := authutil.NewJWTManager(authutil.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
	})
	handler := NewAuthHandler(nil, jwtManager, nil, env)

	app := fiber.New()
	app.Post("/auth/login", handler.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, email, password string) (int, map[string]interface{}) {
	t.Helper()

	body := strings.NewReader(`{"email":"` + email + `","password":"` + password + `"}`)
	req := httptest.NewRequest(fiber.MethodPost, "/auth/login", body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer resp.Body.Close()

	var envelope map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.StatusCode, envelope
}

func TestAdminLogin(t *testing.T) {
	app := newAdminLoginApp()

	status, envelope := postLogin(t, app, "admin@example.com", "super-secret-admin")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	data, ok := envelope["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object in response, got %v", envelope)
	}
	if data["role"] != "admin" {
		t.Errorf("expected admin role, got %v", data["role"])
	}
	if token, _ := data["access_token"].(string); token == "" {
		t.Error("expected a non-empty access token")
	}
}

func TestAdminLoginWrongPassword(t *testing.T) {
	app := newAdminLoginApp()

	cases := []string{
		"wrong-password",
		"super-secret-admi",        // shorter prefix
		"super-secret-admin-extra", // correct prefix, longer
	}
	for _, password := range cases {
		status, _ := postLogin(t, app, "admin@example.com", password)
		if status != fiber.StatusUnauthorized {
			t.Errorf("password %q: expected 401, got %d", password, status)
		}
	}
}
