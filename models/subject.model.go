package models

import "gorm.io/gorm"

// Subject represents a course taught to a class
type Subject struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null"`
	Code         string `json:"code" gorm:"unique;not null"` // e.g., "CS501"
	DepartmentID uint   `json:"department_id" gorm:"index;not null"`
	SemesterID   uint   `json:"semester_id" gorm:"index;not null"`
	Credits      int    `json:"credits" gorm:"default:0"`
	TeacherID    *uint  `json:"teacher_id" gorm:"index"`
	IsDeleted    bool   `gorm:"default:false"`
}
