package studentController

import (
	"errors"
	"log"

	"disasterprep/content"
	"disasterprep/database"
	"disasterprep/middleware"
	"disasterprep/models"
	"disasterprep/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// findStudent loads the durable record for the authenticated student.
func findStudent(name string) (models.Student, error) {
	var student models.Student
	err := database.Database.Db.Where("name = ? AND is_deleted = ?", name, false).First(&student).Error
	return student, err
}

func Dashboard(c *fiber.Ctx) error {
	name := c.Locals("name").(string)

	student, err := findStudent(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("Error fetching student dashboard: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"lessons":  content.Lessons(),
		"quizzes":  content.Quizzes(),
		"progress": student.Progress.Data().Normalized(),
	})
}

func CompleteLesson(c *fiber.Ctx) error {
	name := c.Locals("name").(string)
	lessonID, _ := c.ParamsInt("lessonId")

	if _, ok := content.LessonByID(lessonID); !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Lesson not found")
	}

	defer progress.LockStudent(name)()

	student, err := findStudent(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("Error fetching student: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	updated, _, changed := progress.ApplyLessonCompletion(student.Progress.Data(), lessonID, content.TotalLessons())
	if changed {
		student.Progress = datatypes.NewJSONType(updated)
		if err := database.Database.Db.Save(&student).Error; err != nil {
			log.Printf("Error updating lesson progress: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"progress": updated,
	})
}

func SubmitQuiz(c *fiber.Ctx) error {
	name := c.Locals("name").(string)
	quizID, _ := c.ParamsInt("quizId")

	quiz, ok := content.QuizByID(quizID)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Quiz not found")
	}

	reqData := new(struct {
		Answers []int `json:"answers"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result := progress.Score(quiz, reqData.Answers)

	defer progress.LockStudent(name)()

	student, err := findStudent(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("Error fetching student: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	updated, _, changed := progress.ApplyQuizCompletion(student.Progress.Data(), quizID, result.Score, result.Total, content.TotalQuizzes())
	if changed {
		student.Progress = datatypes.NewJSONType(updated)
		if err := database.Database.Db.Save(&student).Error; err != nil {
			log.Printf("Error updating quiz progress: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	return c.JSON(fiber.Map{
		"score":      result.Score,
		"total":      result.Total,
		"percentage": result.Percentage,
		"progress":   updated,
	})
}
