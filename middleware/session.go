package middleware

import (
	"errors"
	"log"

	"disasterprep/config"
	"disasterprep/session"

	"github.com/gofiber/fiber/v2"
)

// RequireLogin resolves the session cookie and puts the authenticated role
// and name into the request locals. Requests without a live session get 401.
func RequireLogin(c *fiber.Ctx) error {
	token := c.Cookies(config.AppConfig.SessionCookie)
	if token == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Please log in first")
	}

	data, err := session.Active.Get(c.Context(), token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Please log in first")
		}
		log.Printf("Error loading session: %v", err)
		return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	c.Locals("role", data.Role)
	c.Locals("name", data.Name)

	return c.Next()
}

// RequireRole rejects authenticated requests whose session role does not
// match. Must run after RequireLogin.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("role") != role {
			return ErrorResponse(c, fiber.StatusForbidden, "Access denied")
		}
		return c.Next()
	}
}
