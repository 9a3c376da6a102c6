package service

import (
	"fmt"
	"testing"

	"github.com/anayon/examhub/database"
	"github.com/anayon/examhub/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory sqlite database with the production schema,
// including the partial unique index on real results.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive across calls.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedSubChapter(t *testing.T, db *gorm.DB) model.SubChapter {
	t.Helper()

	course := model.Course{Name: "Engineering Admission"}
	require.NoError(t, db.Create(&course).Error)
	group := model.Group{Name: "Science", CourseID: course.ID}
	require.NoError(t, db.Create(&group).Error)
	subject := model.Subject{Name: "Physics", CourseID: course.ID, GroupID: group.ID}
	require.NoError(t, db.Create(&subject).Error)
	chapter := model.Chapter{Name: "Mechanics", CourseID: course.ID, GroupID: group.ID, SubjectID: subject.ID}
	require.NoError(t, db.Create(&chapter).Error)
	sub := model.SubChapter{
		Name: "Kinematics", CourseID: course.ID, GroupID: group.ID,
		SubjectID: subject.ID, ChapterID: chapter.ID,
	}
	require.NoError(t, db.Create(&sub).Error)
	return sub
}

// seedQuestions creates n bank questions under sub, all keyed to correct.
func seedQuestions(t *testing.T, db *gorm.DB, sub model.SubChapter, n int, correct string) []model.Question {
	t.Helper()

	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		q := model.Question{
			SubChapterID:  sub.ID,
			QuestionText:  fmt.Sprintf("Question %d", i+1),
			OptionA:       "option a",
			OptionB:       "option b",
			OptionC:       "option c",
			OptionD:       "option d",
			CorrectAnswer: correct,
		}
		require.NoError(t, db.Create(&q).Error)
		questions = append(questions, q)
	}
	return questions
}

func seedUser(t *testing.T, db *gorm.DB, first, last string) model.User {
	t.Helper()

	user := model.User{FirstName: first, LastName: last, Email: fmt.Sprintf("%s.%s@example.com", first, last)}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func questionIDs(questions []model.Question) []uint {
	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

// makeQuestions builds bank-free questions for pure grading tests.
func makeQuestions(n int, correct string) []model.Question {
	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, model.Question{
			ID:            uint(i + 1),
			QuestionText:  fmt.Sprintf("Question %d", i+1),
			CorrectAnswer: correct,
		})
	}
	return questions
}
