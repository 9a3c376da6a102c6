package service

import (
	"testing"
	"time"

	"github.com/anayon/examhub/internal/apperr"
	"github.com/anayon/examhub/internal/dto"
	"github.com/anayon/examhub/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newExamService(db *gorm.DB) (*examService, repository.ExamRepository) {
	examRepo := repository.NewExamRepository(db)
	svc := &examService{
		examRepo:     examRepo,
		questionRepo: repository.NewQuestionRepository(db),
		now:          time.Now,
	}
	return svc, examRepo
}

func validCreateDTO(ids []uint) dto.ExamCreateDTO {
	return dto.ExamCreateDTO{
		Name:           "Weekly Model Test",
		Description:    "Covers kinematics",
		ExamDate:       "2026-03-15",
		StartTime:      "09:00",
		EndTime:        "11:00",
		Duration:       120,
		TotalQuestions: len(ids),
		QuestionIDs:    ids,
	}
}

func TestCreateExamHoldsCountInvariant(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubChapter(t, db)
	questions := seedQuestions(t, db, sub, 10, "A")
	svc, examRepo := newExamService(db)

	created, err := svc.Create(validCreateDTO(questionIDs(questions)))
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, 10, created.TotalQuestions)
	assert.Len(t, created.Questions, 10)

	stored, err := examRepo.FindByIDWithQuestions(created.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.TotalQuestions, len(stored.Questions))
}

func TestCreateExamQuestionCountMismatch(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubChapter(t, db)
	questions := seedQuestions(t, db, sub, 10, "A")
	svc, _ := newExamService(db)

	req := validCreateDTO(questionIDs(questions))
	req.TotalQuestions = 12

	_, err := svc.Create(req)
	assert.True(t, apperr.IsValidation(err))
}

func TestCreateExamBelowMinimumQuestions(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubChapter(t, db)
	questions := seedQuestions(t, db, sub, 5, "A")
	svc, _ := newExamService(db)

	_, err := svc.Create(validCreateDTO(questionIDs(questions)))
	assert.True(t, apperr.IsValidation(err))
}

func TestCreateExamUnknownQuestion(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubChapter(t, db)
	questions := seedQuestions(t, db, sub, 9, "A")
	svc, _ := newExamService(db)

	ids := append(questionIDs(questions), 9999)
	_, err := svc.Create(validCreateDTO(ids))
	assert.ErrorIs(t, err, apperr.ErrUnknownQuestion)
}

func TestCreateExamDuplicateQuestionIDs(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubChapter(t, db)
	questions := seedQuestions(t, db, sub, 10, "A")
	svc, _ := newExamService(db)

	ids := questionIDs(questions)
	ids[9] = ids[0]
	_, err := svc.Create(validCreateDTO(ids))
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateExamCountOnlyMustMatchCurrentSet(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubChapter(t, db)
	questions := seedQuestions(t, db, sub, 10, "A")
	svc, _ := newExamService(db)

	created, err := svc.Create(validCreateDTO(questionIDs(questions)))
	require.NoError(t, err)

	twelve := 12
	_, err = svc.Update(created.ID, dto.ExamUpdateDTO{TotalQuestions: &twelve})
	assert.True(t, apperr.IsValidation(err))

	ten := 10
	updated, err := svc.Update(created.ID, dto.ExamUpdateDTO{TotalQuestions: &ten})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.TotalQuestions)
}

func TestUpdateExamReplacesQuestionSet(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubChapter(t, db)
	questions := seedQuestions(t, db, sub, 10, "A")
	replacement := seedQuestions(t, db, sub, 12, "B")
	svc, examRepo := newExamService(db)

	created, err := svc.Create(validCreateDTO(questionIDs(questions)))
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, dto.ExamUpdateDTO{QuestionIDs: questionIDs(replacement)})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.TotalQuestions)
	assert.Len(t, updated.Questions, 12)

	stored, err := examRepo.FindByIDWithQuestions(created.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.TotalQuestions, len(stored.Questions))
}

func TestUpdateExamNotFound(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newExamService(db)

	name := "renamed"
	_, err := svc.Update(404, dto.ExamUpdateDTO{Name: &name})
	assert.ErrorIs(t, err, apperr.ErrExamNotFound)
}

func TestDeleteExam(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubChapter(t, db)
	questions := seedQuestions(t, db, sub, 10, "A")
	svc, _ := newExamService(db)

	created, err := svc.Create(validCreateDTO(questionIDs(questions)))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, apperr.ErrExamNotFound)

	assert.ErrorIs(t, svc.Delete(created.ID), apperr.ErrExamNotFound)
}

func TestStartExamWithinWindow(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubChapter(t, db)
	questions := seedQuestions(t, db, sub, 10, "A")
	svc, _ := newExamService(db)

	created, err := svc.Create(validCreateDTO(questionIDs(questions)))
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }
	resp, err := svc.StartExam(created.ID, 1)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	svc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }
	resp, err = svc.StartExam(created.ID, 1)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Exam is not available at this time", resp.Message)
}

func TestStartExamInactive(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubChapter(t, db)
	questions := seedQuestions(t, db, sub, 10, "A")
	svc, _ := newExamService(db)

	req := validCreateDTO(questionIDs(questions))
	inactive := false
	req.IsActive = &inactive
	created, err := svc.Create(req)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }
	resp, err := svc.StartExam(created.ID, 1)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Exam is not active", resp.Message)
}

func TestStartExamNotFound(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newExamService(db)

	_, err := svc.StartExam(404, 1)
	assert.ErrorIs(t, err, apperr.ErrExamNotFound)
}

func TestBrowseQuestionsFiltered(t *testing.T) {
	db := newTestDB(t)
	physics := seedSubChapter(t, db)
	chemistry := seedSubChapter(t, db)
	seedQuestions(t, db, physics, 3, "A")
	seedQuestions(t, db, chemistry, 2, "B")
	svc, _ := newExamService(db)

	all, err := svc.BrowseQuestions(repository.QuestionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	bySubChapter, err := svc.BrowseQuestions(repository.QuestionFilter{SubChapterID: &chemistry.ID})
	require.NoError(t, err)
	require.Len(t, bySubChapter, 2)
	for _, q := range bySubChapter {
		assert.Equal(t, chemistry.ID, q.SubChapterID)
	}

	byCourse, err := svc.BrowseQuestions(repository.QuestionFilter{CourseID: &physics.CourseID})
	require.NoError(t, err)
	assert.Len(t, byCourse, 3)
}
