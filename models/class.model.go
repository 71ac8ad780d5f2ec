package models

import "gorm.io/gorm"

// Class represents one batch/section of students in a department
type Class struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null"` // e.g., "5A"
	DepartmentID uint   `json:"department_id" gorm:"index;not null"`
	SemesterID   uint   `json:"semester_id" gorm:"index;not null"`
	IsDeleted    bool   `gorm:"default:false"`
}
