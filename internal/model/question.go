package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is a four-option multiple-choice item at the bottom of the
// course/group/subject/chapter/sub-chapter hierarchy. This core only reads
// questions; authoring lives in the question-bank module.
type Question struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	SubChapterID     uint           `json:"sub_chapter_id" gorm:"not null;index"`
	SubChapter       SubChapter     `json:"sub_chapter,omitempty" gorm:"foreignKey:SubChapterID"`
	QuestionText     string         `json:"question_text" gorm:"type:text;not null"`
	OptionA          string         `json:"option_a" gorm:"type:text;not null"`
	OptionB          string         `json:"option_b" gorm:"type:text;not null"`
	OptionC          string         `json:"option_c" gorm:"type:text;not null"`
	OptionD          string         `json:"option_d" gorm:"type:text;not null"`
	CorrectAnswer    string         `json:"correct_answer" gorm:"type:varchar(1);not null"` // A, B, C or D
	Description      string         `json:"description,omitempty" gorm:"type:text"`
	PreviousYearInfo string         `json:"previous_year_info,omitempty" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
