// Package content holds the immutable lesson and quiz catalog. The catalog
// is compiled in and shared by all students; nothing mutates it after init.
package content

// Section is one heading with its bullet points inside a lesson.
type Section struct {
	Heading string   `json:"heading"`
	Points  []string `json:"points"`
}

// Lesson is a single catalog lesson. Poster and Video are optional asset
// paths served from the public directory.
type Lesson struct {
	ID      int       `json:"id"`
	Title   string    `json:"title"`
	Goal    string    `json:"goal"`
	Content []Section `json:"content"`
	Poster  string    `json:"poster,omitempty"`
	Video   string    `json:"video,omitempty"`
}

// Question is a single quiz question. Answer is the index into Options of
// the correct choice.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

// Quiz is a set of questions tied to a lesson. LessonID is informational and
// not checked against the lesson catalog.
type Quiz struct {
	ID        int        `json:"id"`
	LessonID  int        `json:"lessonId"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Lessons returns every lesson in catalog order.
func Lessons() []Lesson {
	return lessons
}

// Quizzes returns every quiz in catalog order.
func Quizzes() []Quiz {
	return quizzes
}

// LessonByID looks up a lesson by its catalog ID.
func LessonByID(id int) (Lesson, bool) {
	for _, l := range lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// QuizByID looks up a quiz by its catalog ID.
func QuizByID(id int) (Quiz, bool) {
	for _, q := range quizzes {
		if q.ID == id {
			return q, true
		}
	}
	return Quiz{}, false
}

// TotalLessons returns the lesson count, used by the Lesson Master badge rule.
func TotalLessons() int {
	return len(lessons)
}

// TotalQuizzes returns the quiz count, used by the Quiz Master badge rule.
func TotalQuizzes() int {
	return len(quizzes)
}
