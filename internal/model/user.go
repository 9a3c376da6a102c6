package model

import (
	"time"

	"gorm.io/gorm"
)

// User is owned by the identity module; the exam core only reads display
// names and counts for reporting.
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	FirstName string         `json:"first_name" gorm:"not null"`
	LastName  string         `json:"last_name" gorm:"not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
