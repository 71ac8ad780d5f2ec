package models

import "gorm.io/gorm"

// Bloom's taxonomy levels
const (
	BloomRemember   = "remember"
	BloomUnderstand = "understand"
	BloomApply      = "apply"
	BloomAnalyze    = "analyze"
	BloomEvaluate   = "evaluate"
	BloomCreate     = "create"
	BloomUnknown    = "unknown"
)

// Difficulty levels
const (
	DifficultyEasy    = "easy"
	DifficultyMedium  = "medium"
	DifficultyHard    = "hard"
	DifficultyUnknown = "unknown"
)

// BloomLevels returns the fixed Bloom's vocabulary, unknown last
func BloomLevels() []string {
	return []string{BloomRemember, BloomUnderstand, BloomApply, BloomAnalyze, BloomEvaluate, BloomCreate, BloomUnknown}
}

// DifficultyLevels returns the fixed difficulty vocabulary, unknown last
func DifficultyLevels() []string {
	return []string{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyUnknown}
}

// Question belongs to a section of an exam. CO tagging and the Bloom's and
// difficulty labels drive the attainment reports.
type Question struct {
	gorm.Model
	SectionID       uint    `json:"section_id" gorm:"index;not null"`
	QuestionNumber  string  `json:"question_number"` // e.g., "1a"
	Text            string  `json:"text"`
	Marks           float64 `json:"marks" gorm:"not null"` // max score
	IsOptional      bool    `json:"is_optional" gorm:"default:false"`
	COID            *uint   `json:"co_id" gorm:"index"`
	COWeight        float64 `json:"co_weight" gorm:"default:1.0"` // fraction of marks attributed to the CO
	BloomLevel      string  `json:"bloom_level" gorm:"default:'unknown'"`
	DifficultyLevel string  `json:"difficulty_level" gorm:"default:'unknown'"`
	IsDeleted       bool    `gorm:"default:false"`
}
