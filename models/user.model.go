package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                string `gorm:"default:''"`
	Email               string `gorm:"unique;not null"`
	Mobile              string `gorm:"default:''"`
	Role                string `gorm:"default:'STUDENT'"` // STUDENT, TEACHER, HOD, ADMIN
	Password            string `gorm:"not null"`
	DepartmentID        *uint  `gorm:"index"`
	ClassID             *uint  `gorm:"index"` // set for students only
	RollNumber          string `gorm:"default:''"`
	LastLogin           time.Time
	FailedLoginAttempts int        `gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsBlocked           bool       `gorm:"default:false"`
	IsDeleted           bool       `gorm:"default:false"`
}
