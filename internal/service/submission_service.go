package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/anayon/examhub/internal/apperr"
	"github.com/anayon/examhub/internal/dto"
	"github.com/anayon/examhub/internal/model"
	"github.com/anayon/examhub/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService is the attempt ledger: it grades submissions and enforces
// at most one persisted real result per (user, exam).
type SubmissionService interface {
	Submit(examID, userID uint, answers []dto.SubmittedAnswerDTO, isPractice bool) (*dto.GradedResultDTO, error)
	HasRealAttempt(examID, userID uint) (bool, error)
	UserResults(userID uint) ([]dto.UserResultDTO, error)
	UserHistory(userID uint) ([]dto.UserResultDTO, error)
}

type submissionService struct {
	examRepo   repository.ExamRepository
	resultRepo repository.ExamResultRepository

	// Serializes the check-then-insert per (user, exam) within this process.
	// The partial unique index covers concurrent writers in other processes.
	mu           sync.Mutex
	attemptLocks map[[2]uint]*sync.Mutex
}

func NewSubmissionService(examRepo repository.ExamRepository, resultRepo repository.ExamResultRepository) SubmissionService {
	return &submissionService{
		examRepo:     examRepo,
		resultRepo:   resultRepo,
		attemptLocks: make(map[[2]uint]*sync.Mutex),
	}
}

func (s *submissionService) attemptLock(examID, userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]uint{examID, userID}
	l, ok := s.attemptLocks[key]
	if !ok {
		l = &sync.Mutex{}
		s.attemptLocks[key] = l
	}
	return l
}

func (s *submissionService) Submit(examID, userID uint, answers []dto.SubmittedAnswerDTO, isPractice bool) (*dto.GradedResultDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrExamNotFound
		}
		return nil, fmt.Errorf("error fetching exam %d: %w", examID, err)
	}
	if len(exam.Questions) == 0 {
		return nil, apperr.Validationf("exam %d has no questions, submission is not possible", examID)
	}

	answerMap := make(map[uint]string, len(answers))
	for _, a := range answers {
		answerMap[a.QuestionID] = a.Answer
	}

	// Practice attempts are graded identically but never persisted and never
	// counted toward uniqueness or statistics.
	if isPractice {
		graded := Grade(exam.Questions, answerMap)
		log.Info().Uint("exam_id", examID).Uint("user_id", userID).Int("correct", graded.CorrectAnswers).Msg("Practice submission graded")
		return toGradedResult(examID, userID, graded, true), nil
	}

	lock := s.attemptLock(examID, userID)
	lock.Lock()
	defer lock.Unlock()

	hasAttempt, err := s.resultRepo.HasRealAttempt(examID, userID)
	if err != nil {
		return nil, fmt.Errorf("error checking previous attempts: %w", err)
	}
	if hasAttempt {
		return nil, apperr.ErrDuplicateAttempt
	}

	graded := Grade(exam.Questions, answerMap)

	result := model.ExamResult{
		UserID:         userID,
		ExamID:         examID,
		Score:          graded.CorrectAnswers,
		TotalQuestions: graded.TotalQuestions,
		CorrectAnswers: graded.CorrectAnswers,
		Percentage:     graded.Percentage,
		Passed:         graded.Passed,
		Answers:        graded.Breakdown,
		IsPractice:     false,
		SubmittedAt:    time.Now(),
	}

	if err := s.resultRepo.Create(&result); err != nil {
		// A concurrent writer from another process may win the race; the
		// constraint violation is the same conflict as a failed check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrDuplicateAttempt
		}
		log.Error().Err(err).Uint("exam_id", examID).Uint("user_id", userID).Msg("Failed to persist exam result")
		return nil, fmt.Errorf("database error recording result: %w", err)
	}

	log.Info().Uint("exam_id", examID).Uint("user_id", userID).
		Int("score", graded.CorrectAnswers).Int("percentage", graded.Percentage).Bool("passed", graded.Passed).
		Msg("Exam submission recorded")
	return toGradedResult(examID, userID, graded, false), nil
}

func (s *submissionService) HasRealAttempt(examID, userID uint) (bool, error) {
	has, err := s.resultRepo.HasRealAttempt(examID, userID)
	if err != nil {
		return false, fmt.Errorf("error checking attempt for exam %d: %w", examID, err)
	}
	return has, nil
}

func (s *submissionService) UserResults(userID uint) ([]dto.UserResultDTO, error) {
	results, err := s.resultRepo.FindRealByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("Failed to fetch user results")
		return nil, fmt.Errorf("error fetching results for user %d: %w", userID, err)
	}
	return toUserResults(results), nil
}

// UserHistory returns real results most-recent-first with the exam name
// joined in. Passed is recomputed from the stored percentage so a threshold
// change applies retroactively.
func (s *submissionService) UserHistory(userID uint) ([]dto.UserResultDTO, error) {
	results, err := s.resultRepo.FindRealByUserWithExam(userID)
	if err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("Failed to fetch user history")
		return nil, fmt.Errorf("error fetching history for user %d: %w", userID, err)
	}
	return toUserResults(results), nil
}

func toGradedResult(examID, userID uint, graded GradeResult, isPractice bool) *dto.GradedResultDTO {
	resp := dto.GradedResultDTO{
		ExamID:         examID,
		UserID:         userID,
		CorrectAnswers: graded.CorrectAnswers,
		TotalQuestions: graded.TotalQuestions,
		Percentage:     graded.Percentage,
		Passed:         graded.Passed,
		IsPractice:     isPractice,
	}
	copier.Copy(&resp.Answers, &graded.Breakdown)
	return &resp
}

func toUserResults(results []model.ExamResult) []dto.UserResultDTO {
	dtos := make([]dto.UserResultDTO, 0, len(results))
	for _, r := range results {
		item := dto.UserResultDTO{
			ID:             r.ID,
			ExamID:         r.ExamID,
			ExamName:       r.Exam.Name,
			Score:          r.Score,
			TotalQuestions: r.TotalQuestions,
			CorrectAnswers: r.CorrectAnswers,
			Percentage:     r.Percentage,
			Passed:         r.Percentage >= PassThresholdPercent,
			SubmittedAt:    r.SubmittedAt,
		}
		copier.Copy(&item.Answers, &r.Answers)
		dtos = append(dtos, item)
	}
	return dtos
}
