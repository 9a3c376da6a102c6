package service

import (
	"fmt"
	"time"

	"github.com/anayon/examhub/internal/model"
)

const timeOfDayLayout = "15:04"

// Human-readable window refusal reasons, returned to the caller as-is.
const (
	reasonNotActive     = "Exam is not active"
	reasonOutsideWindow = "Exam is not available at this time"
)

// examWindow combines the exam's calendar date with its start/end time-of-day
// into two absolute instants in now's location.
func examWindow(exam *model.Exam, loc *time.Location) (start, end time.Time, err error) {
	startTOD, err := time.Parse(timeOfDayLayout, exam.StartTime)
	if err != nil {
		return start, end, fmt.Errorf("invalid exam start time %q: %w", exam.StartTime, err)
	}
	endTOD, err := time.Parse(timeOfDayLayout, exam.EndTime)
	if err != nil {
		return start, end, fmt.Errorf("invalid exam end time %q: %w", exam.EndTime, err)
	}

	y, m, d := exam.ExamDate.Date()
	start = time.Date(y, m, d, startTOD.Hour(), startTOD.Minute(), 0, 0, loc)
	end = time.Date(y, m, d, endTOD.Hour(), endTOD.Minute(), 0, 0, loc)
	return start, end, nil
}

// WindowOpen reports whether now falls inside the exam's [start, end] window,
// boundaries inclusive. The reason string is empty when the window is open.
// This check gates only the start operation; submissions are not re-checked.
func WindowOpen(exam *model.Exam, now time.Time) (bool, string) {
	if !exam.IsActive {
		return false, reasonNotActive
	}

	start, end, err := examWindow(exam, now.Location())
	if err != nil {
		return false, reasonOutsideWindow
	}

	if now.Before(start) || now.After(end) {
		return false, reasonOutsideWindow
	}
	return true, ""
}
