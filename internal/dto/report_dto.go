package dto

import "time"

type ExamStatisticsDTO struct {
	ExamID            uint   `json:"exam_id"`
	ExamName          string `json:"exam_name,omitempty"`
	TotalParticipants int    `json:"total_participants"`
	AverageScore      int    `json:"average_score"`
	PassRate          int    `json:"pass_rate"`
	HighestScore      int    `json:"highest_score"`
	LowestScore       int    `json:"lowest_score"`
}

type RecentResultDTO struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	UserName    string    `json:"user_name"`
	ExamName    string    `json:"exam_name"`
	Score       int       `json:"score"`
	Percentage  int       `json:"percentage"`
	Passed      bool      `json:"passed"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type AdminReportDTO struct {
	TotalExams    int64               `json:"total_exams"`
	TotalResults  int64               `json:"total_results"`
	TotalUsers    int64               `json:"total_users"`
	RecentResults []RecentResultDTO   `json:"recent_results"`
	ExamStats     []ExamStatisticsDTO `json:"exam_stats"`
}

type ParticipantDTO struct {
	UserID      uint      `json:"user_id"`
	UserName    string    `json:"user_name"`
	Score       int       `json:"score"`
	Percentage  int       `json:"percentage"`
	Passed      bool      `json:"passed"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ExamParticipationDTO struct {
	ExamID            uint             `json:"exam_id"`
	ExamName          string           `json:"exam_name"`
	TotalParticipants int              `json:"total_participants"`
	Participants      []ParticipantDTO `json:"participants"`
}
