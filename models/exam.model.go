package models

import (
	"time"

	"gorm.io/gorm"
)

// Exam represents one assessment event for a subject and class
type Exam struct {
	gorm.Model
	Title       string    `json:"title" gorm:"not null"`
	ExamType    string    `json:"exam_type" gorm:"default:'CIE'"` // CIE, SEE, ASSIGNMENT, QUIZ
	SubjectID   uint      `json:"subject_id" gorm:"index;not null"`
	ClassID     uint      `json:"class_id" gorm:"index;not null"`
	SemesterID  uint      `json:"semester_id" gorm:"index;not null"`
	ExamDate    time.Time `json:"exam_date"`
	TotalMarks  float64   `json:"total_marks" gorm:"default:0"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	IsDeleted   bool      `gorm:"default:false"`
}

// Section groups questions inside an exam. When QuestionsToAttempt is set
// and the section has optional questions, only that many optional questions
// count toward the total.
type Section struct {
	gorm.Model
	ExamID             uint   `json:"exam_id" gorm:"index;not null"`
	Name               string `json:"name"` // e.g., "Part A"
	QuestionsToAttempt *int   `json:"questions_to_attempt"`
	OrderIndex         int    `json:"order_index" gorm:"default:0"`
	IsDeleted          bool   `gorm:"default:false"`
}
