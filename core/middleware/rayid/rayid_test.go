package rayid_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"storage-template/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(rayid.LocalKey).(string))
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		id := resp.Header.Get(rayid.Header)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.Header, "upstream-id")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "upstream-id", resp.Header.Get(rayid.Header))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "upstream-id", string(body))
	})

	for name, sent := range map[string]string{
		"Oversized": strings.Repeat("a", 65),
		"Backslash": `abc\ninjected=1`,
		"Spaces":    "id with spaces",
		"Quote":     `id"quoted`,
	} {
		t.Run("Replaced"+name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set(rayid.Header, sent)
			resp, err := app.Test(req)
			require.NoError(t, err)

			id := resp.Header.Get(rayid.Header)
			assert.NotEqual(t, sent, id)
			_, err = uuid.Parse(id)
			assert.NoError(t, err)
		})
	}

	t.Run("LongestAccepted", func(t *testing.T) {
		sent := strings.Repeat("b", 64)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.Header, sent)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, sent, resp.Header.Get(rayid.Header))
	})
}
