package dto

import "time"

type StartExamDTO struct {
	UserID uint `json:"user_id" binding:"required"`
}

// StartExamResponseDTO reports whether the exam window admitted the user.
// "Can't start yet" is an expected outcome, not an error.
type StartExamResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SubmittedAnswerDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"omitempty,oneof=A B C D"`
}

type SubmitExamDTO struct {
	UserID  uint                 `json:"user_id" binding:"required"`
	Answers []SubmittedAnswerDTO `json:"answers" binding:"required,dive"`
}

type AnswerRecordDTO struct {
	QuestionID    uint   `json:"question_id"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// GradedResultDTO is returned for both real and practice submissions so
// result-review UIs behave uniformly.
type GradedResultDTO struct {
	ExamID         uint              `json:"exam_id"`
	UserID         uint              `json:"user_id"`
	CorrectAnswers int               `json:"correct_answers"`
	TotalQuestions int               `json:"total_questions"`
	Percentage     int               `json:"percentage"`
	Passed         bool              `json:"passed"`
	Answers        []AnswerRecordDTO `json:"answers"`
	IsPractice     bool              `json:"is_practice"`
}

type CheckAttemptResponseDTO struct {
	HasAttempted bool `json:"has_attempted"`
}

type UserResultDTO struct {
	ID             uint              `json:"id"`
	ExamID         uint              `json:"exam_id"`
	ExamName       string            `json:"exam_name"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"total_questions"`
	CorrectAnswers int               `json:"correct_answers"`
	Percentage     int               `json:"percentage"`
	Passed         bool              `json:"passed"`
	Answers        []AnswerRecordDTO `json:"answers"`
	SubmittedAt    time.Time         `json:"submitted_at"`
}
