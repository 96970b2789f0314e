// internal/middleware/auth.go
package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireLogin gates a route on the authenticated-user context forwarded by
// the gateway. Binary allow/deny, no side effects on the data model.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			log.Printf("[AUTH] ❌ REJECTED | IP=%s | Path=%s | missing user context", c.IP(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized: missing user context from Gateway",
			})
		}
		return c.Next()
	}
}

// RequireStaffRole gates a route on the "staff" role in the gateway's
// roles header. Must run after RequireLogin.
func RequireStaffRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rolesHeader := c.Get("X-User-Roles")
		if rolesHeader == "" {
			log.Printf("[STAFF-AUTH] ❌ REJECTED (no roles) | Path=%s", c.Path())
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: missing user roles from Gateway",
			})
		}
		for _, role := range strings.Split(rolesHeader, ",") {
			if strings.ToLower(strings.TrimSpace(role)) == "staff" {
				return c.Next()
			}
		}
		log.Printf("[STAFF-AUTH] ❌ REJECTED (no staff role) | Roles=%q | Path=%s", rolesHeader, c.Path())
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden: staff role required",
		})
	}
}
