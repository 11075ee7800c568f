package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/beetsolutions/veteran-app/auth"
)

// Auth requires a valid bearer access token and puts the verified
// claims into locals for handlers downstream.
func Auth(sessions *auth.SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Authorization required",
			})
		}
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := sessions.VerifyAccess(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid token",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("email", claims.Email)
		return c.Next()
	}
}
