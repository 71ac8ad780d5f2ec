package models

import "gorm.io/gorm"

// Semester represents one academic term (e.g., semester 5 of 2025-26)
type Semester struct {
	gorm.Model
	Number       int    `json:"number" gorm:"not null"` // 1..8
	AcademicYear string `json:"academic_year"`          // e.g., "2025-26"
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	IsDeleted    bool   `gorm:"default:false"`
}
