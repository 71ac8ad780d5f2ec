package models

import "gorm.io/gorm"

// CourseOutcome is a learning objective scoped to one subject
type CourseOutcome struct {
	gorm.Model
	SubjectID   uint   `json:"subject_id" gorm:"index;not null"`
	Code        string `json:"code"` // e.g., "CO1"
	Description string `json:"description"`
	IsDeleted   bool   `gorm:"default:false"`
}

// ProgramOutcome is a broader learning objective scoped to a department
type ProgramOutcome struct {
	gorm.Model
	DepartmentID uint   `json:"department_id" gorm:"index;not null"`
	Code         string `json:"code"` // e.g., "PO1"
	Description  string `json:"description"`
	IsDeleted    bool   `gorm:"default:false"`
}

// COPOMapping links a course outcome to a program outcome with a strength.
// At most one mapping may exist per (co_id, po_id) pair.
type COPOMapping struct {
	gorm.Model
	COID            uint `json:"co_id" gorm:"uniqueIndex:idx_co_po;not null"`
	POID            uint `json:"po_id" gorm:"uniqueIndex:idx_co_po;not null"`
	MappingStrength int  `json:"mapping_strength" gorm:"default:1"` // 1=low, 2=medium, 3=high
	IsDeleted       bool `gorm:"default:false"`
}
