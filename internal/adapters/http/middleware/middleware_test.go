package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"domainfolio/internal/config"
	"domainfolio/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, app *fiber.App, method, path, authorization string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "secret", ExpiryHours: 1}}

	app := fiber.New()
	app.Get("/private", AuthMiddleware(cfg), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("username").(string))
	})

	resp, body := send(t, app, http.MethodGet, "/private", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, `"error":"UNAUTHORIZED"`)

	resp, _ = send(t, app, http.MethodGet, "/private", "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = send(t, app, http.MethodGet, "/private", "Bearer not-a-token")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, body, `"error":"FORBIDDEN"`)

	foreign, err := jwt.GenerateAccessToken(1, "alice", "alice@example.com", "other-secret", 1)
	require.NoError(t, err)
	resp, _ = send(t, app, http.MethodGet, "/private", "Bearer "+foreign)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	token, err := jwt.GenerateAccessToken(1, "alice", "alice@example.com", "secret", 1)
	require.NoError(t, err)
	resp, body = send(t, app, http.MethodGet, "/private", "bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", body)
}

func TestAuthRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Post("/login", AuthRateLimiter(2), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, _ := send(t, app, http.MethodPost, "/login", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := send(t, app, http.MethodPost, "/login", "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, body, `"error":"TOO_MANY_REQUESTS"`)

	unlimited := fiber.New()
	unlimited.Post("/login", AuthRateLimiter(0), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	for i := 0; i < 10; i++ {
		resp, _ := send(t, unlimited, http.MethodPost, "/login", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestCustomErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return assert.AnError
	})

	resp, body := send(t, app, http.MethodGet, "/missing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, `"error":"NOT_FOUND"`)

	resp, body = send(t, app, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, `"error":"INTERNAL_ERROR"`)
	assert.NotContains(t, body, assert.AnError.Error())
}

func TestNoCacheHeaders(t *testing.T) {
	app := fiber.New()
	app.Get("/fresh", NoCacheHeaders(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, _ := send(t, app, http.MethodGet, "/fresh", "")
	assert.Equal(t, "no-store, no-cache, must-revalidate", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "no-cache", resp.Header.Get("Pragma"))
}
