package middleware

import (
	"encoding/base64"

	"github.com/gofiber/fiber/v2"
)

const (
	clientIDKey = "client_id"
	// ClientIDLength is the character budget of a derived identity.
	ClientIDLength = 32
)

// DeriveClientID fingerprints a client from its address and user agent.
// It is not authentication: clients behind one NAT with one browser collide,
// and both inputs are trivially spoofed.
func DeriveClientID(address, userAgent string) string {
	id := base64.StdEncoding.EncodeToString([]byte(address + "-" + userAgent))
	if len(id) > ClientIDLength {
		id = id[:ClientIDLength]
	}
	return id
}

// clientAddress prefers the raw X-Forwarded-For header so clients behind the
// same proxy chain keep a stable identity.
func clientAddress(c *fiber.Ctx) string {
	if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
		return fwd
	}
	return c.IP()
}

// ClientIdentity stores the derived identity in c.Locals for the handlers.
func ClientIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(clientIDKey, DeriveClientID(clientAddress(c), c.Get(fiber.HeaderUserAgent)))
		return c.Next()
	}
}

// ClientIDFromLocals returns the identity set by ClientIdentity, deriving it
// on the spot when the middleware was not mounted.
func ClientIDFromLocals(c *fiber.Ctx) string {
	if id, ok := c.Locals(clientIDKey).(string); ok && id != "" {
		return id
	}
	return DeriveClientID(clientAddress(c), c.Get(fiber.HeaderUserAgent))
}
