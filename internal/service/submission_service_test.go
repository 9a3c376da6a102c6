package service

import (
	"sync"
	"testing"
	"time"

	"github.com/anayon/examhub/internal/apperr"
	"github.com/anayon/examhub/internal/dto"
	"github.com/anayon/examhub/internal/model"
	"github.com/anayon/examhub/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type submissionFixture struct {
	db         *gorm.DB
	exam       *dto.ExamResponseDTO
	user       model.User
	svc        SubmissionService
	resultRepo repository.ExamResultRepository
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()

	db := newTestDB(t)
	sub := seedSubChapter(t, db)
	questions := seedQuestions(t, db, sub, 10, "A")
	examSvc, examRepo := newExamService(db)

	exam, err := examSvc.Create(validCreateDTO(questionIDs(questions)))
	require.NoError(t, err)

	resultRepo := repository.NewExamResultRepository(db)
	return &submissionFixture{
		db:         db,
		exam:       exam,
		user:       seedUser(t, db, "Amina", "Rahman"),
		svc:        NewSubmissionService(examRepo, resultRepo),
		resultRepo: resultRepo,
	}
}

// answersFor builds correct answers for the first n exam questions and wrong
// ones for the rest.
func (f *submissionFixture) answersFor(correct int) []dto.SubmittedAnswerDTO {
	answers := make([]dto.SubmittedAnswerDTO, 0, len(f.exam.Questions))
	for i, q := range f.exam.Questions {
		answer := "B"
		if i < correct {
			answer = "A"
		}
		answers = append(answers, dto.SubmittedAnswerDTO{QuestionID: q.ID, Answer: answer})
	}
	return answers
}

func TestSubmitRealAttempt(t *testing.T) {
	f := newSubmissionFixture(t)

	result, err := f.svc.Submit(f.exam.ID, f.user.ID, f.answersFor(6), false)
	require.NoError(t, err)
	assert.Equal(t, 6, result.CorrectAnswers)
	assert.Equal(t, 10, result.TotalQuestions)
	assert.Equal(t, 60, result.Percentage)
	assert.True(t, result.Passed)
	assert.False(t, result.IsPractice)
	assert.Len(t, result.Answers, 10)

	has, err := f.svc.HasRealAttempt(f.exam.ID, f.user.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestSubmitDuplicateRealAttemptRejected(t *testing.T) {
	f := newSubmissionFixture(t)

	_, err := f.svc.Submit(f.exam.ID, f.user.ID, f.answersFor(6), false)
	require.NoError(t, err)

	_, err = f.svc.Submit(f.exam.ID, f.user.ID, f.answersFor(8), false)
	assert.ErrorIs(t, err, apperr.ErrDuplicateAttempt)

	// Practice for the same exam still succeeds and is graded identically.
	practice, err := f.svc.Submit(f.exam.ID, f.user.ID, f.answersFor(8), true)
	require.NoError(t, err)
	assert.Equal(t, 8, practice.CorrectAnswers)
	assert.True(t, practice.IsPractice)

	count, err := f.resultRepo.CountReal()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestSubmitConcurrentRealAttempts(t *testing.T) {
	f := newSubmissionFixture(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Submit(f.exam.ID, f.user.ID, f.answersFor(5), false)
		}(i)
	}
	wg.Wait()

	successes, duplicates := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, apperr.ErrDuplicateAttempt):
			duplicates++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, duplicates)

	count, err := f.resultRepo.CountReal()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestSubmitPracticeIsNotPersisted(t *testing.T) {
	f := newSubmissionFixture(t)

	result, err := f.svc.Submit(f.exam.ID, f.user.ID, f.answersFor(7), true)
	require.NoError(t, err)
	assert.Equal(t, 7, result.CorrectAnswers)
	assert.True(t, result.IsPractice)

	has, err := f.svc.HasRealAttempt(f.exam.ID, f.user.ID)
	require.NoError(t, err)
	assert.False(t, has)

	count, err := f.resultRepo.CountReal()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	// A practice run never blocks the real attempt.
	_, err = f.svc.Submit(f.exam.ID, f.user.ID, f.answersFor(6), false)
	require.NoError(t, err)
}

func TestSubmitPartialAnswers(t *testing.T) {
	f := newSubmissionFixture(t)

	// Answer only 5 of 10 questions; the rest count as incorrect.
	answers := f.answersFor(5)[:5]
	result, err := f.svc.Submit(f.exam.ID, f.user.ID, answers, false)
	require.NoError(t, err)
	assert.LessOrEqual(t, result.CorrectAnswers, 5)
	assert.Equal(t, 10, result.TotalQuestions)
	assert.Len(t, result.Answers, 10)
}

func TestSubmitExamNotFound(t *testing.T) {
	f := newSubmissionFixture(t)

	_, err := f.svc.Submit(404, f.user.ID, f.answersFor(5), false)
	assert.ErrorIs(t, err, apperr.ErrExamNotFound)
}

func TestUserHistoryOrderingAndJoin(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubChapter(t, db)
	examSvc, examRepo := newExamService(db)
	resultRepo := repository.NewExamResultRepository(db)
	svc := NewSubmissionService(examRepo, resultRepo)
	user := seedUser(t, db, "Tanvir", "Islam")

	firstExam, err := examSvc.Create(validCreateDTO(questionIDs(seedQuestions(t, db, sub, 10, "A"))))
	require.NoError(t, err)
	secondExam, err := examSvc.Create(validCreateDTO(questionIDs(seedQuestions(t, db, sub, 10, "A"))))
	require.NoError(t, err)

	older := model.ExamResult{
		UserID: user.ID, ExamID: firstExam.ID,
		Score: 4, TotalQuestions: 10, CorrectAnswers: 4, Percentage: 40, Passed: false,
		SubmittedAt: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, resultRepo.Create(&older))
	newer := model.ExamResult{
		UserID: user.ID, ExamID: secondExam.ID,
		Score: 9, TotalQuestions: 10, CorrectAnswers: 9, Percentage: 90, Passed: true,
		SubmittedAt: time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, resultRepo.Create(&newer))

	history, err := svc.UserHistory(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, secondExam.ID, history[0].ExamID)
	assert.Equal(t, firstExam.ID, history[1].ExamID)
	assert.NotEmpty(t, history[0].ExamName)

	// Passed is recomputed from the stored percentage.
	assert.True(t, history[0].Passed)
	assert.False(t, history[1].Passed)
}
