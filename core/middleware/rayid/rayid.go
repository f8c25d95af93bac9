package rayid

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const (
	// Header is the response header carrying the request id.
	Header = "X-Ray-ID"
	// LocalKey is the fiber.Ctx local holding the request id.
	LocalKey = "ray_id"
)

// Client supplied ids end up in every log line of the request.
var validID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// New returns a middleware that tags each request with a RayID. A well-formed
// id sent by the client in the Header is kept, anything else is replaced by a
// fresh UUID.
func New() fiber.Handler {
	tag := requestid.New(requestid.Config{
		Header:     Header,
		Generator:  uuid.NewString,
		ContextKey: LocalKey,
	})
	return func(c *fiber.Ctx) error {
		if id := c.Get(Header); id != "" && !validID.MatchString(id) {
			c.Request().Header.Del(Header)
		}
		return tag(c)
	}
}
