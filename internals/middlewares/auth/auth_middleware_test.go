package auth_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pegawaiku_backend/internals/configs"
	"pegawaiku_backend/internals/features/users/auth/service"
	authmw "pegawaiku_backend/internals/middlewares/auth"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", authmw.AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  c.Locals(authmw.LocalUserID),
			"username": c.Locals(authmw.LocalUsername),
		})
	})
	return app
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newProtectedApp()

	for _, h := range []string{"Bearer", "Basic abc", "Bearer "} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", h)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", h, resp.StatusCode)
		}
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bukan.token.valid")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	app := newProtectedApp()

	token, err := service.IssueAccessToken(uuid.New(), "budi")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
