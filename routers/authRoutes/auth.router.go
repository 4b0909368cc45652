package authRoutes

import (
	authControllers "disasterprep/controllers/auth"
	"disasterprep/middleware"
	authValidators "disasterprep/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api")

	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", authControllers.Logout)
	authGroup.Get("/user", middleware.RequireLogin, authControllers.CurrentUser)
}
