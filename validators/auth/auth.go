package authValidator

import (
	"disasterprep/identity"
	"disasterprep/middleware"

	"github.com/gofiber/fiber/v2"
)

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Role     string `json:"role"`
			Name     string `json:"name"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.Role == "" || reqData.Name == "" || reqData.Password == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "All fields are required")
		}

		if !identity.ValidRole(reqData.Role) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid role")
		}

		return c.Next()
	}
}
