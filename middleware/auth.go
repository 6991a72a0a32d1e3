package middleware

import (
	"strings"

	"achievement-portal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired validates the bearer token and stores the caller's identity in
// the request context under "user_id" and "role".
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(401).JSON(fiber.Map{"error": "missing bearer token"})
		}

		claims, err := utils.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

// RoleAllowed gates a route to the given role codes. Must run after
// AuthRequired.
func RoleAllowed(roles ...int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(int)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "role not resolved"})
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "forbidden"})
	}
}
