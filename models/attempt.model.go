package models

import "gorm.io/gorm"

// Attempt records one try a student made on a question. Exactly one attempt
// per (student, question) carries IsBestAttempt at any time.
type Attempt struct {
	gorm.Model
	StudentID     uint    `json:"student_id" gorm:"index:idx_attempt_student_question;not null"`
	QuestionID    uint    `json:"question_id" gorm:"index:idx_attempt_student_question;not null"`
	AttemptNumber int     `json:"attempt_number" gorm:"default:1"`
	MarksObtained float64 `json:"marks_obtained" gorm:"default:0"`
	MaxMarks      float64 `json:"max_marks" gorm:"default:0"`
	IsBestAttempt bool    `json:"is_best_attempt" gorm:"default:false"`
	IsDeleted     bool    `gorm:"default:false"`
}
