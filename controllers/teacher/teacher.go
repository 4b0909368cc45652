package teacherController

import (
	"log"

	"disasterprep/content"
	"disasterprep/database"
	"disasterprep/middleware"
	"disasterprep/models"

	"github.com/gofiber/fiber/v2"
)

// Dashboard returns the full read-only roster with every student's progress.
func Dashboard(c *fiber.Ctx) error {
	var students []models.Student
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("name asc").Find(&students).Error; err != nil {
		log.Printf("Error fetching students for teacher dashboard: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	roster := make([]fiber.Map, len(students))
	for i, s := range students {
		roster[i] = fiber.Map{
			"name":     s.Name,
			"progress": s.Progress.Data().Normalized(),
		}
	}

	return c.JSON(fiber.Map{
		"students": roster,
		"lessons":  content.Lessons(),
		"quizzes":  content.Quizzes(),
	})
}
