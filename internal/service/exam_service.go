package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/anayon/examhub/internal/apperr"
	"github.com/anayon/examhub/internal/dto"
	"github.com/anayon/examhub/internal/model"
	"github.com/anayon/examhub/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MinQuestionsPerExam is the smallest question set an exam may carry.
const MinQuestionsPerExam = 10

const examDateLayout = "2006-01-02"

type ExamService interface {
	Create(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error)
	Update(id uint, req dto.ExamUpdateDTO) (*dto.ExamResponseDTO, error)
	Get(id uint) (*dto.ExamResponseDTO, error)
	List() ([]dto.ExamResponseDTO, error)
	Delete(id uint) error
	StartExam(examID, userID uint) (*dto.StartExamResponseDTO, error)
	BrowseQuestions(filter repository.QuestionFilter) ([]dto.QuestionResponseDTO, error)
}

type examService struct {
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
	now          func() time.Time
}

func NewExamService(examRepo repository.ExamRepository, questionRepo repository.QuestionRepository) ExamService {
	return &examService{examRepo: examRepo, questionRepo: questionRepo, now: time.Now}
}

// validateQuestionSelection enforces the question-set invariants and resolves
// every ID against the question bank. Runs before any persistence mutation.
func (s *examService) validateQuestionSelection(questionIDs []uint, totalQuestions int) ([]model.Question, error) {
	if len(questionIDs) != totalQuestions {
		return nil, apperr.Validationf(
			"number of selected questions (%d) does not match the expected total (%d)",
			len(questionIDs), totalQuestions)
	}
	if len(questionIDs) < MinQuestionsPerExam {
		return nil, apperr.Validationf("minimum %d questions required for an exam", MinQuestionsPerExam)
	}

	seen := make(map[uint]bool, len(questionIDs))
	for _, id := range questionIDs {
		if seen[id] {
			return nil, apperr.Validationf("duplicate question ID %d in selection", id)
		}
		seen[id] = true
	}

	questions, err := s.questionRepo.FindByIDs(questionIDs)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve question IDs against question bank")
		return nil, fmt.Errorf("error resolving questions: %w", err)
	}
	if len(questions) != len(questionIDs) {
		return nil, apperr.ErrUnknownQuestion
	}
	return questions, nil
}

func (s *examService) Create(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error) {
	questions, err := s.validateQuestionSelection(req.QuestionIDs, req.TotalQuestions)
	if err != nil {
		return nil, err
	}

	examDate, err := time.Parse(examDateLayout, req.ExamDate)
	if err != nil {
		return nil, apperr.Validationf("invalid exam date %q, expected YYYY-MM-DD", req.ExamDate)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	exam := model.Exam{
		Name:           req.Name,
		Description:    req.Description,
		ExamDate:       examDate,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Duration:       req.Duration,
		TotalQuestions: req.TotalQuestions,
		Questions:      questions,
		IsActive:       isActive,
	}

	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create exam")
		return nil, fmt.Errorf("database error creating exam: %w", err)
	}

	log.Info().Uint("exam_id", exam.ID).Int("questions", len(questions)).Msg("Exam created")
	return s.Get(exam.ID)
}

func (s *examService) Update(id uint, req dto.ExamUpdateDTO) (*dto.ExamResponseDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrExamNotFound
		}
		return nil, fmt.Errorf("error fetching exam %d: %w", id, err)
	}

	// Validate the whole patch before mutating anything.
	var newQuestions []model.Question
	switch {
	case req.QuestionIDs != nil:
		total := len(req.QuestionIDs)
		if req.TotalQuestions != nil {
			total = *req.TotalQuestions
		}
		newQuestions, err = s.validateQuestionSelection(req.QuestionIDs, total)
		if err != nil {
			return nil, err
		}
		exam.TotalQuestions = total
	case req.TotalQuestions != nil:
		if *req.TotalQuestions != len(exam.Questions) {
			return nil, apperr.Validationf(
				"cannot update total questions to %d as it does not match the current number of questions (%d)",
				*req.TotalQuestions, len(exam.Questions))
		}
		exam.TotalQuestions = *req.TotalQuestions
	}

	if req.ExamDate != nil {
		examDate, parseErr := time.Parse(examDateLayout, *req.ExamDate)
		if parseErr != nil {
			return nil, apperr.Validationf("invalid exam date %q, expected YYYY-MM-DD", *req.ExamDate)
		}
		exam.ExamDate = examDate
	}
	if req.Name != nil {
		exam.Name = *req.Name
	}
	if req.Description != nil {
		exam.Description = *req.Description
	}
	if req.StartTime != nil {
		exam.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		exam.EndTime = *req.EndTime
	}
	if req.Duration != nil {
		exam.Duration = *req.Duration
	}
	if req.IsActive != nil {
		exam.IsActive = *req.IsActive
	}

	if err := s.examRepo.Save(exam); err != nil {
		log.Error().Err(err).Uint("exam_id", id).Msg("Failed to update exam")
		return nil, fmt.Errorf("database error updating exam %d: %w", id, err)
	}
	if newQuestions != nil {
		if err := s.examRepo.ReplaceQuestions(exam, newQuestions); err != nil {
			log.Error().Err(err).Uint("exam_id", id).Msg("Failed to replace exam question set")
			return nil, fmt.Errorf("database error updating exam %d questions: %w", id, err)
		}
	}

	log.Info().Uint("exam_id", id).Msg("Exam updated")
	return s.Get(id)
}

func (s *examService) Get(id uint) (*dto.ExamResponseDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrExamNotFound
		}
		return nil, fmt.Errorf("error fetching exam %d: %w", id, err)
	}
	return toExamResponse(exam), nil
}

func (s *examService) List() ([]dto.ExamResponseDTO, error) {
	exams, err := s.examRepo.FindAllWithQuestions()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list exams")
		return nil, fmt.Errorf("error fetching exams: %w", err)
	}

	dtos := make([]dto.ExamResponseDTO, 0, len(exams))
	for i := range exams {
		dtos = append(dtos, *toExamResponse(&exams[i]))
	}
	return dtos, nil
}

func (s *examService) Delete(id uint) error {
	if _, err := s.examRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrExamNotFound
		}
		return fmt.Errorf("error fetching exam %d: %w", id, err)
	}
	if err := s.examRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("exam_id", id).Msg("Failed to delete exam")
		return fmt.Errorf("database error deleting exam %d: %w", id, err)
	}
	log.Info().Uint("exam_id", id).Msg("Exam deleted")
	return nil
}

// StartExam checks the exam window for the user. Advisory: the window is not
// re-verified when the submission arrives later.
func (s *examService) StartExam(examID, userID uint) (*dto.StartExamResponseDTO, error) {
	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrExamNotFound
		}
		return nil, fmt.Errorf("error fetching exam %d: %w", examID, err)
	}

	if open, reason := WindowOpen(exam, s.now()); !open {
		log.Info().Uint("exam_id", examID).Uint("user_id", userID).Str("reason", reason).Msg("Exam start refused")
		return &dto.StartExamResponseDTO{Success: false, Message: reason}, nil
	}

	log.Info().Uint("exam_id", examID).Uint("user_id", userID).Msg("Exam started")
	return &dto.StartExamResponseDTO{Success: true, Message: "Exam started successfully"}, nil
}

// BrowseQuestions lists bank questions narrowed to one branch of the
// course hierarchy, for composing an exam's question selection.
func (s *examService) BrowseQuestions(filter repository.QuestionFilter) ([]dto.QuestionResponseDTO, error) {
	questions, err := s.questionRepo.FindFiltered(filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to browse question bank")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		var q dto.QuestionResponseDTO
		copier.Copy(&q, &questions[i])
		dtos = append(dtos, q)
	}
	return dtos, nil
}

func toExamResponse(exam *model.Exam) *dto.ExamResponseDTO {
	var resp dto.ExamResponseDTO
	copier.Copy(&resp, exam)
	resp.ExamDate = exam.ExamDate.Format(examDateLayout)
	if resp.Questions == nil {
		resp.Questions = []dto.QuestionResponseDTO{}
	}
	return &resp
}
