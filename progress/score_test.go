package progress_test

import (
	"testing"

	"disasterprep/content"
	"disasterprep/progress"

	"github.com/stretchr/testify/assert"
)

func twoQuestionQuiz() content.Quiz {
	return content.Quiz{
		ID: 1,
		Questions: []content.Question{
			{Question: "q1", Options: []string{"a", "b"}, Answer: 1},
			{Question: "q2", Options: []string{"a", "b"}, Answer: 1},
		},
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		quiz    content.Quiz
		answers []int
		want    progress.Result
	}{
		{
			name:    "all correct",
			quiz:    twoQuestionQuiz(),
			answers: []int{1, 1},
			want:    progress.Result{Score: 2, Total: 2, Percentage: 100},
		},
		{
			name:    "half correct",
			quiz:    twoQuestionQuiz(),
			answers: []int{1, 0},
			want:    progress.Result{Score: 1, Total: 2, Percentage: 50},
		},
		{
			name:    "empty submission",
			quiz:    twoQuestionQuiz(),
			answers: []int{},
			want:    progress.Result{Score: 0, Total: 2, Percentage: 0},
		},
		{
			name:    "short submission counts missing as wrong",
			quiz:    twoQuestionQuiz(),
			answers: []int{1},
			want:    progress.Result{Score: 1, Total: 2, Percentage: 50},
		},
		{
			name:    "extra answers ignored",
			quiz:    twoQuestionQuiz(),
			answers: []int{1, 1, 0, 3},
			want:    progress.Result{Score: 2, Total: 2, Percentage: 100},
		},
		{
			name:    "no questions",
			quiz:    content.Quiz{ID: 9},
			answers: []int{1},
			want:    progress.Result{Score: 0, Total: 0, Percentage: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, progress.Score(tt.quiz, tt.answers))
		})
	}
}

func TestScorePercentageRoundsToNearest(t *testing.T) {
	quiz := content.Quiz{
		Questions: []content.Question{
			{Answer: 0}, {Answer: 0}, {Answer: 0},
		},
	}

	assert.Equal(t, 33, progress.Score(quiz, []int{0, 1, 1}).Percentage)
	assert.Equal(t, 67, progress.Score(quiz, []int{0, 0, 1}).Percentage)
}
