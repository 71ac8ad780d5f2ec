package models

import "gorm.io/gorm"

// Mark is the realized score for a (student, exam, question) triple used by
// reporting. It always mirrors the current best attempt on that question.
type Mark struct {
	gorm.Model
	StudentID     uint    `json:"student_id" gorm:"uniqueIndex:idx_mark_key;not null"`
	ExamID        uint    `json:"exam_id" gorm:"uniqueIndex:idx_mark_key;not null"`
	QuestionID    uint    `json:"question_id" gorm:"uniqueIndex:idx_mark_key;not null"`
	MarksObtained float64 `json:"marks_obtained" gorm:"default:0"`
	MaxMarks      float64 `json:"max_marks" gorm:"default:0"`
	IsDeleted     bool    `gorm:"default:false"`
}
