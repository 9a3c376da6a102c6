package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeMixedAnswers(t *testing.T) {
	// 10 questions keyed A; 6 correct, 4 wrong.
	questions := makeQuestions(10, "A")
	answers := map[uint]string{}
	for i := uint(1); i <= 6; i++ {
		answers[i] = "A"
	}
	for i := uint(7); i <= 10; i++ {
		answers[i] = "B"
	}

	result := Grade(questions, answers)

	assert.Equal(t, 6, result.CorrectAnswers)
	assert.Equal(t, 10, result.TotalQuestions)
	assert.Equal(t, 60, result.Percentage)
	assert.True(t, result.Passed)
	assert.Len(t, result.Breakdown, 10)
}

func TestGradeUnansweredCountAsIncorrect(t *testing.T) {
	questions := makeQuestions(10, "A")
	answers := map[uint]string{1: "A", 2: "A", 3: "B", 4: "A", 5: "A"}

	result := Grade(questions, answers)

	assert.Equal(t, 4, result.CorrectAnswers)
	assert.LessOrEqual(t, result.CorrectAnswers, 5)
	assert.Equal(t, 40, result.Percentage)
	assert.False(t, result.Passed)

	// The breakdown covers every exam question, answered or not.
	require.Len(t, result.Breakdown, 10)
	unanswered := 0
	for _, record := range result.Breakdown {
		assert.Equal(t, "A", record.CorrectAnswer)
		if record.UserAnswer == "" {
			unanswered++
		}
	}
	assert.Equal(t, 5, unanswered)
}

func TestGradeIsIdempotent(t *testing.T) {
	questions := makeQuestions(10, "C")
	answers := map[uint]string{1: "C", 2: "D", 5: "C"}

	first := Grade(questions, answers)
	second := Grade(questions, answers)

	assert.Equal(t, first, second)
}

func TestGradePassBoundary(t *testing.T) {
	questions := makeQuestions(10, "A")

	// 5/10 = exactly 50%: passed.
	answers := map[uint]string{1: "A", 2: "A", 3: "A", 4: "A", 5: "A"}
	result := Grade(questions, answers)
	assert.Equal(t, 50, result.Percentage)
	assert.True(t, result.Passed)

	// 4/10 = 40%: failed.
	delete(answers, 5)
	result = Grade(questions, answers)
	assert.Equal(t, 40, result.Percentage)
	assert.False(t, result.Passed)
}

func TestGradePercentageRounding(t *testing.T) {
	// 1/3 rounds to 33, 2/3 rounds to 67.
	questions := makeQuestions(3, "A")

	result := Grade(questions, map[uint]string{1: "A"})
	assert.Equal(t, 33, result.Percentage)

	result = Grade(questions, map[uint]string{1: "A", 2: "A"})
	assert.Equal(t, 67, result.Percentage)
}

func TestGradeEmptyQuestionSet(t *testing.T) {
	result := Grade(nil, map[uint]string{1: "A"})

	assert.Equal(t, 0, result.CorrectAnswers)
	assert.Equal(t, 0, result.TotalQuestions)
	assert.Equal(t, 0, result.Percentage)
	assert.False(t, result.Passed)
	assert.Empty(t, result.Breakdown)
}
