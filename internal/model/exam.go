package model

import (
	"time"

	"gorm.io/gorm"
)

type Exam struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	ExamDate    time.Time  `json:"exam_date" gorm:"type:date;not null"`
	StartTime   string     `json:"start_time" gorm:"type:varchar(5);not null"` // "HH:MM"
	EndTime     string     `json:"end_time" gorm:"type:varchar(5);not null"`   // "HH:MM"
	Duration    int        `json:"duration" gorm:"not null"`                   // minutes, informational
	// Invariant: TotalQuestions == len(Questions) after every successful create/update.
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	Questions      []Question     `json:"questions,omitempty" gorm:"many2many:exam_questions"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
