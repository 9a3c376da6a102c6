package repository

import (
	"github.com/anayon/examhub/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	Save(exam *model.Exam) error
	ReplaceQuestions(exam *model.Exam, questions []model.Question) error
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithQuestions(id uint) (*model.Exam, error)
	FindAllWithQuestions() ([]model.Exam, error)
	Delete(id uint) error
	Count() (int64, error)
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(exam *model.Exam) error {
	// GORM creates the exam_questions join rows from exam.Questions.
	return r.db.Create(exam).Error
}

func (r *examRepository) Save(exam *model.Exam) error {
	return r.db.Omit("Questions").Save(exam).Error
}

func (r *examRepository) ReplaceQuestions(exam *model.Exam, questions []model.Question) error {
	return r.db.Model(exam).Association("Questions").Replace(questions)
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.First(&exam, id).Error
	return &exam, err
}

func (r *examRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.Preload("Questions").First(&exam, id).Error
	return &exam, err
}

func (r *examRepository) FindAllWithQuestions() ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.Preload("Questions").Order("exams.created_at DESC").Find(&exams).Error
	return exams, err
}

func (r *examRepository) Delete(id uint) error {
	return r.db.Delete(&model.Exam{}, id).Error
}

func (r *examRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Exam{}).Count(&count).Error
	return count, err
}
