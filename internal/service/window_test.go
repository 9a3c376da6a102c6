package service

import (
	"testing"
	"time"

	"github.com/anayon/examhub/internal/model"
	"github.com/stretchr/testify/assert"
)

func windowExam() *model.Exam {
	return &model.Exam{
		Name:      "Morning Mock",
		ExamDate:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "11:00",
		IsActive:  true,
	}
}

func TestWindowOpenBoundariesInclusive(t *testing.T) {
	exam := windowExam()

	cases := []struct {
		name string
		now  time.Time
		open bool
	}{
		{"one minute before start", time.Date(2026, 3, 15, 8, 59, 0, 0, time.UTC), false},
		{"exactly at start", time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), true},
		{"inside window", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"exactly at end", time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC), true},
		{"one minute after end", time.Date(2026, 3, 15, 11, 1, 0, 0, time.UTC), false},
		{"wrong day", time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			open, reason := WindowOpen(exam, tc.now)
			assert.Equal(t, tc.open, open)
			if tc.open {
				assert.Empty(t, reason)
			} else {
				assert.Equal(t, reasonOutsideWindow, reason)
			}
		})
	}
}

func TestWindowInactiveExam(t *testing.T) {
	exam := windowExam()
	exam.IsActive = false

	open, reason := WindowOpen(exam, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	assert.False(t, open)
	assert.Equal(t, reasonNotActive, reason)
}

func TestWindowMalformedTimesAreClosed(t *testing.T) {
	exam := windowExam()
	exam.StartTime = "nine"

	open, reason := WindowOpen(exam, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	assert.False(t, open)
	assert.NotEmpty(t, reason)
}
