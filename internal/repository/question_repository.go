package repository

import (
	"github.com/anayon/examhub/internal/model"
	"gorm.io/gorm"
)

// QuestionFilter narrows a bank query to one branch of the
// course/group/subject/chapter/sub-chapter hierarchy. Nil fields match all.
type QuestionFilter struct {
	CourseID     *uint
	GroupID      *uint
	SubjectID    *uint
	ChapterID    *uint
	SubChapterID *uint
}

// QuestionRepository is the read-only surface the exam core needs from the
// question bank. Authoring operations live in the question-bank module.
type QuestionRepository interface {
	FindByIDs(ids []uint) ([]model.Question, error)
	FindFiltered(filter QuestionFilter) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []model.Question
	err := r.db.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindFiltered(filter QuestionFilter) ([]model.Question, error) {
	query := r.db.Model(&model.Question{}).
		Joins("JOIN sub_chapters ON sub_chapters.id = questions.sub_chapter_id")

	if filter.CourseID != nil {
		query = query.Where("sub_chapters.course_id = ?", *filter.CourseID)
	}
	if filter.GroupID != nil {
		query = query.Where("sub_chapters.group_id = ?", *filter.GroupID)
	}
	if filter.SubjectID != nil {
		query = query.Where("sub_chapters.subject_id = ?", *filter.SubjectID)
	}
	if filter.ChapterID != nil {
		query = query.Where("sub_chapters.chapter_id = ?", *filter.ChapterID)
	}
	if filter.SubChapterID != nil {
		query = query.Where("questions.sub_chapter_id = ?", *filter.SubChapterID)
	}

	var questions []model.Question
	err := query.Order("questions.id ASC").Find(&questions).Error
	return questions, err
}
