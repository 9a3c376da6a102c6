package dto

import "time"

// ExamCreateDTO is the admin payload for creating an exam with its fixed
// question selection. The question count invariants are checked in the
// service layer against the question bank.
type ExamCreateDTO struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description,omitempty"`
	ExamDate       string `json:"exam_date" binding:"required,datetime=2006-01-02"`
	StartTime      string `json:"start_time" binding:"required,hhmm"`
	EndTime        string `json:"end_time" binding:"required,hhmm"`
	Duration       int    `json:"duration" binding:"required,min=1"`
	TotalQuestions int    `json:"total_questions" binding:"required,min=1"`
	QuestionIDs    []uint `json:"question_ids" binding:"required,min=1"`
	IsActive       *bool  `json:"is_active"`
}

// ExamUpdateDTO is a partial patch; nil fields are left unchanged.
type ExamUpdateDTO struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	ExamDate       *string `json:"exam_date" binding:"omitempty,datetime=2006-01-02"`
	StartTime      *string `json:"start_time" binding:"omitempty,hhmm"`
	EndTime        *string `json:"end_time" binding:"omitempty,hhmm"`
	Duration       *int    `json:"duration" binding:"omitempty,min=1"`
	TotalQuestions *int    `json:"total_questions" binding:"omitempty,min=1"`
	QuestionIDs    []uint  `json:"question_ids"`
	IsActive       *bool   `json:"is_active"`
}

type QuestionResponseDTO struct {
	ID               uint   `json:"id"`
	SubChapterID     uint   `json:"sub_chapter_id"`
	QuestionText     string `json:"question_text"`
	OptionA          string `json:"option_a"`
	OptionB          string `json:"option_b"`
	OptionC          string `json:"option_c"`
	OptionD          string `json:"option_d"`
	CorrectAnswer    string `json:"correct_answer"`
	Description      string `json:"description,omitempty"`
	PreviousYearInfo string `json:"previous_year_info,omitempty"`
}

type ExamResponseDTO struct {
	ID             uint                  `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description,omitempty"`
	ExamDate       string                `json:"exam_date"`
	StartTime      string                `json:"start_time"`
	EndTime        string                `json:"end_time"`
	Duration       int                   `json:"duration"`
	TotalQuestions int                   `json:"total_questions"`
	Questions      []QuestionResponseDTO `json:"questions"`
	IsActive       bool                  `json:"is_active"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}
