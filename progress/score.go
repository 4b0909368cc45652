package progress

import (
	"math"

	"disasterprep/content"
)

// Result is the outcome of scoring one quiz submission.
type Result struct {
	Score      int `json:"score"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Score grades a submission against the quiz answer key. Positions missing
// from a short submission count as incorrect. Percentage rounds to the
// nearest integer; a quiz with no questions reports 0 instead of failing,
// since that is a content anomaly rather than a runtime fault.
func Score(quiz content.Quiz, answers []int) Result {
	total := len(quiz.Questions)

	score := 0
	for i, q := range quiz.Questions {
		if i < len(answers) && answers[i] == q.Answer {
			score++
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(score) / float64(total) * 100))
	}

	return Result{Score: score, Total: total, Percentage: percentage}
}
