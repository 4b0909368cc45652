package studentRoutes

import (
	studentControllers "disasterprep/controllers/student"
	"disasterprep/identity"
	"disasterprep/middleware"
	studentValidators "disasterprep/validators/student"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/api/student", middleware.RequireLogin, middleware.RequireRole(identity.RoleStudent))

	studentGroup.Get("/dashboard", studentControllers.Dashboard)
	studentGroup.Post("/lesson/:lessonId/complete", studentValidators.CompleteLesson(), studentControllers.CompleteLesson)
	studentGroup.Post("/quiz/:quizId/submit", studentValidators.SubmitQuiz(), studentControllers.SubmitQuiz)
}
