package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// AnswerRecord is one line of the per-question breakdown stored with a result.
// UserAnswer is "" when the question was left unanswered.
type AnswerRecord struct {
	QuestionID    uint   `json:"question_id"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// AnswerRecords is stored as a JSON column.
type AnswerRecords []AnswerRecord

func (a AnswerRecords) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AnswerRecords) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = nil
		return nil
	default:
		return fmt.Errorf("unsupported type %T for AnswerRecords", value)
	}
}

// ExamResult is a terminal record of a graded attempt. Real (non-practice)
// results are unique per (user, exam), enforced by a partial unique index.
// Rows are never updated after creation.
type ExamResult struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	User           User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ExamID         uint           `json:"exam_id" gorm:"not null;index"`
	Exam           Exam           `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
	Score          int            `json:"score" gorm:"not null"`
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	CorrectAnswers int            `json:"correct_answers" gorm:"not null"`
	Percentage     int            `json:"percentage" gorm:"not null"`
	Passed         bool           `json:"passed" gorm:"not null"`
	Answers        AnswerRecords  `json:"answers" gorm:"type:jsonb"`
	IsPractice     bool           `json:"is_practice" gorm:"not null;default:false"`
	SubmittedAt    time.Time      `json:"submitted_at" gorm:"not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
