package studentValidator

import (
	"disasterprep/middleware"

	"github.com/gofiber/fiber/v2"
)

// CompleteLesson validator middleware
func CompleteLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, err := c.ParamsInt("lessonId")
		if err != nil || lessonID < 1 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid lesson id")
		}
		return c.Next()
	}
}

// SubmitQuiz validator middleware
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, err := c.ParamsInt("quizId")
		if err != nil || quizID < 1 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid quiz id")
		}

		reqData := new(struct {
			Answers []int `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		// An empty submission is valid and scores zero; a missing field is not.
		if reqData.Answers == nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Answers are required")
		}

		return c.Next()
	}
}
