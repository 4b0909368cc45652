package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Progress is the per-student completion record stored as a single JSON
// document on the student row. Lessons and Quizzes hold catalog IDs, each at
// most once. Badges is append-only; a label never appears twice.
type Progress struct {
	Lessons []int    `json:"lessons"`
	Quizzes []int    `json:"quizzes"`
	Badges  []string `json:"badges"`
}

// NewProgress returns an empty progress record with non-nil slices so it
// serializes as [] rather than null, matching what clients expect.
func NewProgress() Progress {
	return Progress{
		Lessons: []int{},
		Quizzes: []int{},
		Badges:  []string{},
	}
}

// Normalized replaces nil slices with empty ones. Rows written by older
// seeders can come back with missing fields.
func (p Progress) Normalized() Progress {
	if p.Lessons == nil {
		p.Lessons = []int{}
	}
	if p.Quizzes == nil {
		p.Quizzes = []int{}
	}
	if p.Badges == nil {
		p.Badges = []string{}
	}
	return p
}

// Student is the durable per-student record, keyed by unique name.
type Student struct {
	gorm.Model
	Name             string                       `json:"name" gorm:"unique;not null"`
	PasswordHash     string                       `json:"-" gorm:"not null"`
	GuardianContacts datatypes.JSONSlice[string]  `json:"guardianContacts"`
	Progress         datatypes.JSONType[Progress] `json:"progress"`
	IsDeleted        bool                         `json:"-" gorm:"default:false"`
}
