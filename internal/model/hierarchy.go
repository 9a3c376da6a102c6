package model

import (
	"time"

	"gorm.io/gorm"
)

// Question-bank hierarchy: Course -> Group -> Subject -> Chapter -> SubChapter.
// Each level keeps flat foreign keys to its ancestors so filter queries can
// join a single level instead of walking an object graph.

type Course struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type Group struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	CourseID    uint           `json:"course_id" gorm:"not null;index"`
	Course      Course         `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type Subject struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	CourseID    uint           `json:"course_id" gorm:"not null;index"`
	GroupID     uint           `json:"group_id" gorm:"not null;index"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type Chapter struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	CourseID    uint           `json:"course_id" gorm:"not null;index"`
	GroupID     uint           `json:"group_id" gorm:"not null;index"`
	SubjectID   uint           `json:"subject_id" gorm:"not null;index"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type SubChapter struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	CourseID    uint           `json:"course_id" gorm:"not null;index"`
	GroupID     uint           `json:"group_id" gorm:"not null;index"`
	SubjectID   uint           `json:"subject_id" gorm:"not null;index"`
	ChapterID   uint           `json:"chapter_id" gorm:"not null;index"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
