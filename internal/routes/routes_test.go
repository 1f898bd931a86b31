package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/securesign/securesign/internal/config"
	"github.com/securesign/securesign/internal/logging"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	cfg := config.Config{
		AppName:   "securesign-test",
		JWTSecret: "test-secret",
		TokenTTL:  8 * time.Hour,
	}
	if err := Setup(app, Deps{Cfg: cfg, Logger: logging.Discard()}); err != nil {
		t.Fatalf("setup routes: %v", err)
	}
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string, header map[string]string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()

	var decoded map[string]any
	_ = json.Unmarshal(payload, &decoded)
	return resp, decoded
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", body["status"])
	}
	if _, ok := body["time"].(string); !ok {
		t.Fatalf("expected time field, got %v", body["time"])
	}
}

func TestRegisterThenConflict(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"s3cret"}`, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first register: expected 200, got %d", resp.StatusCode)
	}
	if body["email"] != "alice@example.com" {
		t.Fatalf("expected email echoed, got %v", body["email"])
	}
	if id, _ := body["id"].(string); id == "" {
		t.Fatalf("expected non-empty id")
	}

	resp2, _ := doJSON(t, app, fiber.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"other"}`, nil)
	if resp2.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", resp2.StatusCode)
	}
}

func TestLoginFlow(t *testing.T) {
	app := newTestApp(t)

	if resp, _ := doJSON(t, app, fiber.MethodPost, "/api/auth/register",
		`{"email":"bob@example.com","password":"correct-horse"}`, nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("register failed: %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		`{"email":"bob@example.com","password":"correct-horse"}`, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("expected token in login response")
	}

	// Wrong password and unknown email must be indistinguishable.
	wrongResp, _ := doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		`{"email":"bob@example.com","password":"wrong"}`, nil)
	unknownResp, _ := doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"correct-horse"}`, nil)
	if wrongResp.StatusCode != http.StatusUnauthorized || unknownResp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongResp.StatusCode, unknownResp.StatusCode)
	}
}

func TestMeEndpoint(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, fiber.MethodPost, "/api/auth/register",
		`{"email":"carol@example.com","password":"pass-phrase"}`, nil)
	_, login := doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		`{"email":"carol@example.com","password":"pass-phrase"}`, nil)
	token, _ := login["token"].(string)
	if token == "" {
		t.Fatalf("login did not return a token")
	}

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/me", "", map[string]string{
		fiber.HeaderAuthorization: "Bearer " + token,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp.StatusCode)
	}
	if body["email"] != "carol@example.com" {
		t.Fatalf("expected email claim, got %v", body["email"])
	}

	badResp, _ := doJSON(t, app, fiber.MethodGet, "/api/me", "", map[string]string{
		fiber.HeaderAuthorization: "Bearer not-a-token",
	})
	if badResp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", badResp.StatusCode)
	}

	missingResp, _ := doJSON(t, app, fiber.MethodGet, "/api/me", "", nil)
	if missingResp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", missingResp.StatusCode)
	}
}

func TestTenantCreation(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/tenants",
		`{"name":"Acme","slug":"acme"}`, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create tenant: expected 200, got %d", resp.StatusCode)
	}
	if body["plan"] != "free" {
		t.Fatalf("expected default plan free, got %v", body["plan"])
	}

	resp2, body2 := doJSON(t, app, fiber.MethodPost, "/api/tenants",
		`{"name":"Globex","slug":"globex","plan":"pro"}`, nil)
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("create tenant with plan: expected 200, got %d", resp2.StatusCode)
	}
	if body2["plan"] != "pro" {
		t.Fatalf("expected plan pro, got %v", body2["plan"])
	}
}
