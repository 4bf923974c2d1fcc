package reqcheck

import (
	"github.com/gofiber/fiber/v2"
)

// ContentType returns a middleware that rejects POST requests lacking a
// Content-Type header before they reach their handler.
func ContentType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost && c.Get(fiber.HeaderContentType) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Content-Type header missing"})
		}
		return c.Next()
	}
}
