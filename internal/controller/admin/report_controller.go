package admin

import (
	"net/http"

	"github.com/anayon/examhub/internal/controller"
	"github.com/anayon/examhub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ReportController struct {
	statsService service.StatisticsService
}

func NewReportController(statsService service.StatisticsService) *ReportController {
	return &ReportController{statsService: statsService}
}

// AdminReport godoc
// @Summary (Admin) Overall report
// @Description Totals, the ten most recent results and per-exam statistics.
// @Tags Admin - Reports
// @Produce json
// @Success 200 {object} dto.AdminReportDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/reports [get]
func (c *ReportController) AdminReport(ctx *gin.Context) {
	report, err := c.statsService.AdminReport()
	if err != nil {
		log.Error().Err(err).Msg("Admin report failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// ExamStatistics godoc
// @Summary (Admin) Statistics for one exam
// @Description Participation, average score, pass rate and score range over real attempts. All zeros when nobody has taken the exam.
// @Tags Admin - Reports
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamStatisticsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID"
// @Router /admin/reports/exams/{exam_id} [get]
func (c *ReportController) ExamStatistics(ctx *gin.Context) {
	examID, ok := controller.ParseIDParam(ctx, "exam_id")
	if !ok {
		return
	}

	stats, err := c.statsService.ExamStatistics(examID)
	if err != nil {
		log.Error().Err(err).Uint("exam_id", examID).Msg("Exam statistics failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// AllExamStatistics godoc
// @Summary (Admin) Statistics for every exam
// @Tags Admin - Reports
// @Produce json
// @Success 200 {array} dto.ExamStatisticsDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/reports/statistics [get]
func (c *ReportController) AllExamStatistics(ctx *gin.Context) {
	stats, err := c.statsService.AllExamStatistics()
	if err != nil {
		log.Error().Err(err).Msg("All exam statistics failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// ExamParticipation godoc
// @Summary (Admin) Participation rosters per exam
// @Tags Admin - Reports
// @Produce json
// @Success 200 {array} dto.ExamParticipationDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/reports/participation [get]
func (c *ReportController) ExamParticipation(ctx *gin.Context) {
	report, err := c.statsService.ExamParticipation()
	if err != nil {
		log.Error().Err(err).Msg("Participation report failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}
