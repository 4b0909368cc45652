package teacherRoutes

import (
	teacherControllers "disasterprep/controllers/teacher"
	"disasterprep/identity"
	"disasterprep/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupTeacherRoutes(app *fiber.App) {
	teacherGroup := app.Group("/api/teacher", middleware.RequireLogin, middleware.RequireRole(identity.RoleTeacher))

	teacherGroup.Get("/dashboard", teacherControllers.Dashboard)
}
