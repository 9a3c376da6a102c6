package repository

import (
	"github.com/anayon/examhub/internal/model"
	"gorm.io/gorm"
)

// ExamResultRepository is the sole writer of exam_results; the partial unique
// index on (user_id, exam_id) WHERE NOT is_practice backs the at-most-once
// guarantee for real attempts.
type ExamResultRepository interface {
	Create(result *model.ExamResult) error
	HasRealAttempt(examID, userID uint) (bool, error)
	FindRealByUser(userID uint) ([]model.ExamResult, error)
	FindRealByUserWithExam(userID uint) ([]model.ExamResult, error)
	FindRealByExam(examID uint) ([]model.ExamResult, error)
	FindRecentReal(limit int) ([]model.ExamResult, error)
	FindAllRealWithDetails() ([]model.ExamResult, error)
	CountReal() (int64, error)
}

type examResultRepository struct {
	db *gorm.DB
}

func NewExamResultRepository(db *gorm.DB) ExamResultRepository {
	return &examResultRepository{db: db}
}

func (r *examResultRepository) Create(result *model.ExamResult) error {
	return r.db.Create(result).Error
}

func (r *examResultRepository) HasRealAttempt(examID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.ExamResult{}).
		Where("exam_id = ? AND user_id = ? AND NOT is_practice", examID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *examResultRepository) FindRealByUser(userID uint) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.db.Preload("Exam").
		Where("user_id = ? AND NOT is_practice", userID).
		Find(&results).Error
	return results, err
}

func (r *examResultRepository) FindRealByUserWithExam(userID uint) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.db.Preload("Exam").
		Where("user_id = ? AND NOT is_practice", userID).
		Order("submitted_at DESC").
		Find(&results).Error
	return results, err
}

func (r *examResultRepository) FindRealByExam(examID uint) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.db.Where("exam_id = ? AND NOT is_practice", examID).Find(&results).Error
	return results, err
}

func (r *examResultRepository) FindRecentReal(limit int) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.db.Preload("User").Preload("Exam").
		Where("NOT is_practice").
		Order("submitted_at DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

func (r *examResultRepository) FindAllRealWithDetails() ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.db.Preload("User").Preload("Exam").
		Where("NOT is_practice").
		Order("submitted_at DESC").
		Find(&results).Error
	return results, err
}

func (r *examResultRepository) CountReal() (int64, error) {
	var count int64
	err := r.db.Model(&model.ExamResult{}).Where("NOT is_practice").Count(&count).Error
	return count, err
}
