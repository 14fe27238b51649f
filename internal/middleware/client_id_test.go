package middleware

import (
	"encoding/base64"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveClientID(t *testing.T) {
	id := DeriveClientID("10.0.0.1", "Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0")
	assert.Len(t, id, ClientIDLength)
	assert.Equal(t, id, DeriveClientID("10.0.0.1", "Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0"))
	assert.NotEqual(t, id, DeriveClientID("10.0.0.2", "Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0"))

	full := base64.StdEncoding.EncodeToString([]byte("10.0.0.1-Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0"))
	assert.Equal(t, full[:ClientIDLength], id)
}

func TestDeriveClientIDShortInput(t *testing.T) {
	id := DeriveClientID("", "")
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("-")), id)
}

func TestClientIdentityMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ClientIdentity())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(ClientIDFromLocals(c))
	})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.7, 10.0.0.1")
	req.Header.Set(fiber.HeaderUserAgent, "test-agent")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, DeriveClientID("203.0.113.7, 10.0.0.1", "test-agent"), string(body))
}

func TestClientIDFromLocalsWithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(ClientIDFromLocals(c))
	})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, "198.51.100.1")
	req.Header.Set(fiber.HeaderUserAgent, "ua")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, DeriveClientID("198.51.100.1", "ua"), string(body))
}
