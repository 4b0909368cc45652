package studentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"disasterprep/config"
	"disasterprep/content"
	"disasterprep/database"
	"disasterprep/identity"
	"disasterprep/models"
	"disasterprep/progress"
	"disasterprep/session"
	"disasterprep/utils"

	authRoutes "disasterprep/routers/authRoutes"
	studentRoutes "disasterprep/routers/studentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Student{}))
	database.Database = database.DbInstance{Db: db}

	require.NoError(t, identity.Init())
	session.Init(session.NewMemoryStore(time.Hour))

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	return app
}

func seedStudent(t *testing.T, name, password string) {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	student := models.Student{
		Name:         name,
		PasswordHash: hash,
		Progress:     datatypes.NewJSONType(models.NewProgress()),
	}
	require.NoError(t, database.Database.Db.Create(&student).Error)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, cookie string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: config.AppConfig.SessionCookie, Value: cookie})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func login(t *testing.T, app *fiber.App, role, name, password string) string {
	t.Helper()

	resp, _ := doJSON(t, app, "POST", "/api/login", fiber.Map{
		"role":     role,
		"name":     name,
		"password": password,
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == config.AppConfig.SessionCookie && c.Value != "" {
			return c.Value
		}
	}
	t.Fatal("login response has no session cookie")
	return ""
}

func progressOf(body map[string]interface{}) map[string]interface{} {
	return body["progress"].(map[string]interface{})
}

func idsOf(raw interface{}) []int {
	items := raw.([]interface{})
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = int(item.(float64))
	}
	return ids
}

func badgesOf(raw interface{}) []string {
	items := raw.([]interface{})
	badges := make([]string, len(items))
	for i, item := range items {
		badges[i] = item.(string)
	}
	return badges
}

func TestDashboardRequiresLogin(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "GET", "/api/student/dashboard", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Please log in first", body["error"])
}

func TestDashboardRejectsTeacherRole(t *testing.T) {
	app := setupApp(t)
	cookie := login(t, app, "teacher", "mrjohnson", "teacher123")

	resp, body := doJSON(t, app, "GET", "/api/student/dashboard", nil, cookie)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied", body["error"])
}

func TestDashboardReturnsCatalogAndProgress(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	resp, body := doJSON(t, app, "GET", "/api/student/dashboard", nil, cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Len(t, body["lessons"], content.TotalLessons())
	assert.Len(t, body["quizzes"], content.TotalQuizzes())
	assert.Empty(t, progressOf(body)["lessons"])
	assert.Empty(t, progressOf(body)["badges"])
}

func TestDashboardStudentRecordMissing(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	// The record disappearing mid-session surfaces as 404, not a crash.
	require.NoError(t, database.Database.Db.Unscoped().Where("name = ?", "alice").Delete(&models.Student{}).Error)

	resp, body := doJSON(t, app, "GET", "/api/student/dashboard", nil, cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Student not found", body["error"])
}

func TestCompleteLessonAwardsFirstLessonBadge(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	resp, body := doJSON(t, app, "POST", "/api/student/lesson/1/complete", nil, cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []int{1}, idsOf(progressOf(body)["lessons"]))
	assert.Equal(t, []string{progress.BadgeFirstLesson}, badgesOf(progressOf(body)["badges"]))
}

func TestCompleteLessonIdempotent(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	_, _ = doJSON(t, app, "POST", "/api/student/lesson/1/complete", nil, cookie)
	resp, body := doJSON(t, app, "POST", "/api/student/lesson/1/complete", nil, cookie)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []int{1}, idsOf(progressOf(body)["lessons"]))
	assert.Equal(t, []string{progress.BadgeFirstLesson}, badgesOf(progressOf(body)["badges"]))
}

func TestCompleteEveryLessonAwardsLessonMaster(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	var body map[string]interface{}
	for _, lesson := range content.Lessons() {
		_, body = doJSON(t, app, "POST", fmt.Sprintf("/api/student/lesson/%d/complete", lesson.ID), nil, cookie)
	}

	badges := badgesOf(progressOf(body)["badges"])
	assert.Contains(t, badges, progress.BadgeFirstLesson)
	assert.Contains(t, badges, progress.BadgeLessonMaster)
	assert.Len(t, badges, 2)
}

func TestCompleteUnknownLesson(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	resp, body := doJSON(t, app, "POST", "/api/student/lesson/99/complete", nil, cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Lesson not found", body["error"])
}

func TestCompleteLessonPersists(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	_, _ = doJSON(t, app, "POST", "/api/student/lesson/2/complete", nil, cookie)

	_, body := doJSON(t, app, "GET", "/api/student/dashboard", nil, cookie)
	assert.Equal(t, []int{2}, idsOf(progressOf(body)["lessons"]))
}

func TestSubmitQuizPerfectScore(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	// Quiz 2 has a single question with answer index 1.
	resp, body := doJSON(t, app, "POST", "/api/student/quiz/2/submit", fiber.Map{"answers": []int{1}}, cookie)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["score"])
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, float64(100), body["percentage"])

	badges := badgesOf(progressOf(body)["badges"])
	assert.Equal(t, []string{progress.PerfectScoreBadge(2), progress.BadgeFirstQuiz}, badges)
}

func TestSubmitQuizPartialScore(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	// Quiz 1 has two questions, both with answer index 1.
	resp, body := doJSON(t, app, "POST", "/api/student/quiz/1/submit", fiber.Map{"answers": []int{1, 0}}, cookie)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["score"])
	assert.Equal(t, float64(2), body["total"])
	assert.Equal(t, float64(50), body["percentage"])
	assert.NotContains(t, badgesOf(progressOf(body)["badges"]), progress.PerfectScoreBadge(1))
}

func TestSubmitQuizRepeatDoesNotRecount(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	_, first := doJSON(t, app, "POST", "/api/student/quiz/1/submit", fiber.Map{"answers": []int{1, 0}}, cookie)

	// A perfect retake is re-scored but never re-enters the ledger.
	resp, second := doJSON(t, app, "POST", "/api/student/quiz/1/submit", fiber.Map{"answers": []int{1, 1}}, cookie)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), second["score"])
	assert.Equal(t, idsOf(progressOf(first)["quizzes"]), idsOf(progressOf(second)["quizzes"]))
	assert.Equal(t, badgesOf(progressOf(first)["badges"]), badgesOf(progressOf(second)["badges"]))
}

func TestSubmitEveryQuizAwardsQuizMaster(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	var body map[string]interface{}
	for _, quiz := range content.Quizzes() {
		_, body = doJSON(t, app, "POST", fmt.Sprintf("/api/student/quiz/%d/submit", quiz.ID), fiber.Map{"answers": []int{}}, cookie)
	}

	badges := badgesOf(progressOf(body)["badges"])
	assert.Contains(t, badges, progress.BadgeFirstQuiz)
	assert.Contains(t, badges, progress.BadgeQuizMaster)
}

func TestSubmitUnknownQuiz(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	resp, body := doJSON(t, app, "POST", "/api/student/quiz/42/submit", fiber.Map{"answers": []int{1}}, cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Quiz not found", body["error"])
}

func TestSubmitQuizWithoutAnswersField(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	resp, body := doJSON(t, app, "POST", "/api/student/quiz/1/submit", fiber.Map{}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Answers are required", body["error"])
}

func TestSubmitQuizEmptyAnswersScoresZero(t *testing.T) {
	app := setupApp(t)
	seedStudent(t, "alice", "student123")
	cookie := login(t, app, "student", "alice", "student123")

	resp, body := doJSON(t, app, "POST", "/api/student/quiz/1/submit", fiber.Map{"answers": []int{}}, cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["score"])
	assert.Equal(t, float64(0), body["percentage"])
	assert.Equal(t, []int{1}, idsOf(progressOf(body)["quizzes"]))
}
