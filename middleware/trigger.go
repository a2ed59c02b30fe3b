package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// TriggerHeader carries the shared secret on scheduler-invoked requests
const TriggerHeader = "x-trigger-token"

// TriggerToken returns a middleware guarding server-to-server trigger
// endpoints with a single shared secret. The secret is injected here rather
// than read from config at call time so the gate is testable with fixtures.
//
// An empty secret means misconfiguration: nothing is ever authorized.
func TriggerToken(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized",
			})
		}

		token := c.Get(TriggerHeader)
		if token != secret {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized",
			})
		}

		return c.Next()
	}
}
