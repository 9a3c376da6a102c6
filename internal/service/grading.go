package service

import (
	"math"

	"github.com/anayon/examhub/internal/model"
)

// PassThresholdPercent is applied to the rounded percentage. History reads
// recompute passed from stored percentages, so changing this takes effect
// retroactively.
const PassThresholdPercent = 50

// GradeResult is the outcome of grading one submission against an exam's
// question set.
type GradeResult struct {
	CorrectAnswers int
	TotalQuestions int
	Percentage     int
	Passed         bool
	Breakdown      model.AnswerRecords
}

// Grade scores submitted answers against the exam's fixed question set.
// Every exam question is graded, not just the answered ones; a missing or
// empty answer counts as incorrect. Pure and safe to call repeatedly.
func Grade(questions []model.Question, answers map[uint]string) GradeResult {
	correct := 0
	breakdown := make(model.AnswerRecords, 0, len(questions))

	for _, q := range questions {
		userAnswer := answers[q.ID]
		if userAnswer != "" && userAnswer == q.CorrectAnswer {
			correct++
		}
		breakdown = append(breakdown, model.AnswerRecord{
			QuestionID:    q.ID,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	total := len(questions)
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(correct) / float64(total) * 100))
	}

	return GradeResult{
		CorrectAnswers: correct,
		TotalQuestions: total,
		Percentage:     percentage,
		Passed:         percentage >= PassThresholdPercent,
		Breakdown:      breakdown,
	}
}
