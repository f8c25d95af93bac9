package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

const (
	// Header is the request header carrying the API key.
	Header = "X-API-Key"
	// LocalKey is the fiber.Ctx local holding the accepted key.
	LocalKey = "api_key"
)

// Config holds configuration for the auth middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables the check.
	ApiKey string
}

// New returns a middleware rejecting requests without the configured API key.
func New(cfg Config) fiber.Handler {
	expected := []byte(cfg.ApiKey)
	return keyauth.New(keyauth.Config{
		// No key configured means the API is open.
		Next: func(*fiber.Ctx) bool {
			return len(expected) == 0
		},
		KeyLookup:  "header:" + Header,
		ContextKey: LocalKey,
		Validator: func(_ *fiber.Ctx, key string) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), expected) == 1, nil
		},
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or missing API key"})
		},
	})
}
