package service

import (
	"fmt"
	"math"

	"github.com/anayon/examhub/internal/dto"
	"github.com/anayon/examhub/internal/model"
	"github.com/anayon/examhub/internal/repository"
	"github.com/rs/zerolog/log"
)

const recentResultsLimit = 10

// StatisticsService builds read-side aggregates from the attempt ledger.
// Practice results are excluded everywhere.
type StatisticsService interface {
	ExamStatistics(examID uint) (*dto.ExamStatisticsDTO, error)
	AllExamStatistics() ([]dto.ExamStatisticsDTO, error)
	AdminReport() (*dto.AdminReportDTO, error)
	ExamParticipation() ([]dto.ExamParticipationDTO, error)
}

type statisticsService struct {
	examRepo   repository.ExamRepository
	resultRepo repository.ExamResultRepository
	userRepo   repository.UserRepository
}

func NewStatisticsService(examRepo repository.ExamRepository, resultRepo repository.ExamResultRepository, userRepo repository.UserRepository) StatisticsService {
	return &statisticsService{examRepo: examRepo, resultRepo: resultRepo, userRepo: userRepo}
}

func (s *statisticsService) ExamStatistics(examID uint) (*dto.ExamStatisticsDTO, error) {
	results, err := s.resultRepo.FindRealByExam(examID)
	if err != nil {
		log.Error().Err(err).Uint("exam_id", examID).Msg("Failed to fetch results for statistics")
		return nil, fmt.Errorf("error fetching results for exam %d: %w", examID, err)
	}
	stats := computeStatistics(examID, results)
	return &stats, nil
}

func (s *statisticsService) AllExamStatistics() ([]dto.ExamStatisticsDTO, error) {
	exams, err := s.examRepo.FindAllWithQuestions()
	if err != nil {
		return nil, fmt.Errorf("error fetching exams: %w", err)
	}

	stats := make([]dto.ExamStatisticsDTO, 0, len(exams))
	for i := range exams {
		examStats, err := s.ExamStatistics(exams[i].ID)
		if err != nil {
			return nil, err
		}
		examStats.ExamName = exams[i].Name
		stats = append(stats, *examStats)
	}
	return stats, nil
}

func (s *statisticsService) AdminReport() (*dto.AdminReportDTO, error) {
	totalExams, err := s.examRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("error counting exams: %w", err)
	}
	totalResults, err := s.resultRepo.CountReal()
	if err != nil {
		return nil, fmt.Errorf("error counting results: %w", err)
	}
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}

	recent, err := s.resultRepo.FindRecentReal(recentResultsLimit)
	if err != nil {
		return nil, fmt.Errorf("error fetching recent results: %w", err)
	}
	recentDTOs := make([]dto.RecentResultDTO, 0, len(recent))
	for _, r := range recent {
		recentDTOs = append(recentDTOs, dto.RecentResultDTO{
			ID:          r.ID,
			UserID:      r.UserID,
			UserName:    r.User.FullName(),
			ExamName:    r.Exam.Name,
			Score:       r.Score,
			Percentage:  r.Percentage,
			Passed:      r.Percentage >= PassThresholdPercent,
			SubmittedAt: r.SubmittedAt,
		})
	}

	examStats, err := s.AllExamStatistics()
	if err != nil {
		return nil, err
	}

	return &dto.AdminReportDTO{
		TotalExams:    totalExams,
		TotalResults:  totalResults,
		TotalUsers:    totalUsers,
		RecentResults: recentDTOs,
		ExamStats:     examStats,
	}, nil
}

// ExamParticipation groups all real results into per-exam rosters,
// most recent submissions first within each exam.
func (s *statisticsService) ExamParticipation() ([]dto.ExamParticipationDTO, error) {
	results, err := s.resultRepo.FindAllRealWithDetails()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch results for participation report")
		return nil, fmt.Errorf("error fetching participation data: %w", err)
	}

	byExam := make(map[uint]*dto.ExamParticipationDTO)
	order := make([]uint, 0)
	for _, r := range results {
		entry, ok := byExam[r.ExamID]
		if !ok {
			entry = &dto.ExamParticipationDTO{ExamID: r.ExamID, ExamName: r.Exam.Name}
			byExam[r.ExamID] = entry
			order = append(order, r.ExamID)
		}
		entry.TotalParticipants++
		entry.Participants = append(entry.Participants, dto.ParticipantDTO{
			UserID:      r.UserID,
			UserName:    r.User.FullName(),
			Score:       r.Score,
			Percentage:  r.Percentage,
			Passed:      r.Percentage >= PassThresholdPercent,
			SubmittedAt: r.SubmittedAt,
		})
	}

	report := make([]dto.ExamParticipationDTO, 0, len(order))
	for _, examID := range order {
		report = append(report, *byExam[examID])
	}
	return report, nil
}

// computeStatistics never divides by zero; an exam with no real results
// yields all-zero statistics.
func computeStatistics(examID uint, results []model.ExamResult) dto.ExamStatisticsDTO {
	stats := dto.ExamStatisticsDTO{ExamID: examID}
	if len(results) == 0 {
		return stats
	}

	totalScore := 0
	passedCount := 0
	highest := results[0].Score
	lowest := results[0].Score
	for _, r := range results {
		totalScore += r.Score
		if r.Percentage >= PassThresholdPercent {
			passedCount++
		}
		if r.Score > highest {
			highest = r.Score
		}
		if r.Score < lowest {
			lowest = r.Score
		}
	}

	stats.TotalParticipants = len(results)
	stats.AverageScore = int(math.Round(float64(totalScore) / float64(len(results))))
	stats.PassRate = int(math.Round(float64(passedCount) / float64(len(results)) * 100))
	stats.HighestScore = highest
	stats.LowestScore = lowest
	return stats
}
