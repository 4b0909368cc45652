// Package progress implements the completion ledger rules and quiz scoring.
// The rules are pure functions over a Progress value; callers do the
// read-modify-write against the student record under LockStudent.
package progress

import (
	"fmt"

	"disasterprep/models"
)

// Badge labels. Each may appear at most once in a student's record.
const (
	BadgeFirstLesson  = "First Lesson"
	BadgeLessonMaster = "Lesson Master"
	BadgeFirstQuiz    = "First Quiz"
	BadgeQuizMaster   = "Quiz Master"
)

// PerfectScoreBadge is the label awarded for a full-score quiz submission.
func PerfectScoreBadge(quizID int) string {
	return fmt.Sprintf("Quiz %d Perfect Score", quizID)
}

// ApplyLessonCompletion records a lesson completion. If the lesson is already
// present this is a no-op and changed is false. On a state-changing
// completion the milestone badges are evaluated: First Lesson on the first
// ever completion, Lesson Master when every catalog lesson is done. The
// input is never mutated.
func ApplyLessonCompletion(p models.Progress, lessonID, totalLessons int) (models.Progress, []string, bool) {
	p = p.Normalized()

	if containsInt(p.Lessons, lessonID) {
		return p, nil, false
	}

	p.Lessons = append(copyInts(p.Lessons), lessonID)

	var awarded []string
	if len(p.Lessons) == 1 {
		awarded = append(awarded, BadgeFirstLesson)
	}
	if totalLessons > 0 && len(p.Lessons) == totalLessons {
		awarded = append(awarded, BadgeLessonMaster)
	}

	p.Badges = appendBadges(p.Badges, awarded)
	return p, awarded, true
}

// ApplyQuizCompletion records a quiz completion with its score. Idempotent on
// quiz membership: a repeat submission never re-enters the quiz or
// re-evaluates badges, whatever the new score. Badge order on a
// state-changing completion: perfect score, First Quiz, Quiz Master.
func ApplyQuizCompletion(p models.Progress, quizID, score, total, totalQuizzes int) (models.Progress, []string, bool) {
	p = p.Normalized()

	if containsInt(p.Quizzes, quizID) {
		return p, nil, false
	}

	p.Quizzes = append(copyInts(p.Quizzes), quizID)

	var awarded []string
	if total > 0 && score == total {
		awarded = append(awarded, PerfectScoreBadge(quizID))
	}
	if len(p.Quizzes) == 1 {
		awarded = append(awarded, BadgeFirstQuiz)
	}
	if totalQuizzes > 0 && len(p.Quizzes) == totalQuizzes {
		awarded = append(awarded, BadgeQuizMaster)
	}

	p.Badges = appendBadges(p.Badges, awarded)
	return p, awarded, true
}

// appendBadges appends labels that are not already present, keeping the
// badge list append-only and duplicate-free for the record's lifetime.
func appendBadges(badges, labels []string) []string {
	out := append([]string{}, badges...)
	for _, label := range labels {
		if !containsString(out, label) {
			out = append(out, label)
		}
	}
	return out
}

func containsInt(list []int, v int) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func copyInts(list []int) []int {
	return append([]int{}, list...)
}
