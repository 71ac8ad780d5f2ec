package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// COAttainment is the cached attainment snapshot for a course outcome,
// keyed by (co, semester, class, subject). Recomputation overwrites the row
// in place; these records are a cache, not a history.
type COAttainment struct {
	gorm.Model
	COID                   uint           `json:"co_id" gorm:"uniqueIndex:idx_co_attainment_key;not null"`
	SemesterID             uint           `json:"semester_id" gorm:"uniqueIndex:idx_co_attainment_key;not null"`
	ClassID                uint           `json:"class_id" gorm:"uniqueIndex:idx_co_attainment_key;not null"`
	SubjectID              uint           `json:"subject_id" gorm:"uniqueIndex:idx_co_attainment_key;not null"`
	AttainmentPercentage   float64        `json:"attainment_percentage" gorm:"default:0"`
	StudentCount           int            `json:"student_count" gorm:"default:0"`
	QuestionCount          int            `json:"question_count" gorm:"default:0"`
	BloomDistribution      datatypes.JSON `json:"bloom_distribution"`
	DifficultyDistribution datatypes.JSON `json:"difficulty_distribution"`
	ComputedAt             time.Time      `json:"computed_at"`
}

// POAttainment is the cached attainment snapshot for a program outcome,
// keyed by (po, semester, class, department).
type POAttainment struct {
	gorm.Model
	POID                 uint           `json:"po_id" gorm:"uniqueIndex:idx_po_attainment_key;not null"`
	SemesterID           uint           `json:"semester_id" gorm:"uniqueIndex:idx_po_attainment_key;not null"`
	ClassID              uint           `json:"class_id" gorm:"uniqueIndex:idx_po_attainment_key;not null"`
	DepartmentID         uint           `json:"department_id" gorm:"uniqueIndex:idx_po_attainment_key;not null"`
	AttainmentPercentage float64        `json:"attainment_percentage" gorm:"default:0"`
	StudentCount         int            `json:"student_count" gorm:"default:0"`
	COContributions      datatypes.JSON `json:"co_contributions"`
	ComputedAt           time.Time      `json:"computed_at"`
}
