package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zeelias/barbershop-backend/internal/services"
)

// AdminAuth validates the Bearer session token on every request. No state is
// kept between requests; an expired or tampered token is simply rejected.
func AdminAuth(sessions *services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(auth, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing bearer token",
			})
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		if err := sessions.Validate(raw); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired session",
			})
		}

		return c.Next()
	}
}
