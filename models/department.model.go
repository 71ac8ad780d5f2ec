package models

import "gorm.io/gorm"

// Department represents an academic department (e.g., CSE, ECE)
type Department struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Code      string `json:"code" gorm:"unique;not null"` // e.g., "CSE"
	HodID     *uint  `json:"hod_id" gorm:"index"`         // head of department user
	IsDeleted bool   `gorm:"default:false"`
}
