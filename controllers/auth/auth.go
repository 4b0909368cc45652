package authController

import (
	"errors"
	"log"

	"disasterprep/config"
	"disasterprep/identity"
	"disasterprep/middleware"
	"disasterprep/session"
	"disasterprep/utils"

	"github.com/gofiber/fiber/v2"
)

func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Role     string `json:"role"`
		Name     string `json:"name"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	ident, err := identity.Find(reqData.Role, reqData.Name)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			// Same response as a wrong password so names cannot be probed
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		log.Printf("Error looking up identity: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if !utils.CheckPassword(ident.PasswordHash, reqData.Password) {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := session.Active.Create(c.Context(), session.Data{Role: ident.Role, Name: ident.Name})
	if err != nil {
		log.Printf("Error creating session: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     config.AppConfig.SessionCookie,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   int(config.AppConfig.SessionTTL.Seconds()),
	})

	return c.JSON(fiber.Map{
		"success": true,
		"role":    ident.Role,
		"name":    ident.Name,
	})
}

// Logout destroys the session. It succeeds even when no session existed.
func Logout(c *fiber.Ctx) error {
	token := c.Cookies(config.AppConfig.SessionCookie)
	if token != "" {
		if err := session.Active.Destroy(c.Context(), token); err != nil {
			log.Printf("Error destroying session: %v", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     config.AppConfig.SessionCookie,
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   -1,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

func CurrentUser(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"role": c.Locals("role"),
		"name": c.Locals("name"),
	})
}
