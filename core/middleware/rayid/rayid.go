package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	// Header carries the ray id on requests and responses.
	Header = "X-Ray-ID"
	// LocalsKey is where the ray id is stored on the fiber context.
	LocalsKey = "ray_id"
)

// New returns a middleware that assigns every request a ray id. An id sent by
// the client is kept so upstream proxies can correlate their own logs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Copy: header values point into a buffer fasthttp reuses.
		id := utils.CopyString(c.Get(Header))
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
