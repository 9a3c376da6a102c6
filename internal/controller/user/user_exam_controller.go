package user

import (
	"net/http"

	"github.com/anayon/examhub/internal/controller"
	"github.com/anayon/examhub/internal/dto"
	"github.com/anayon/examhub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type UserExamController struct {
	examService       service.ExamService
	submissionService service.SubmissionService
}

func NewUserExamController(examService service.ExamService, submissionService service.SubmissionService) *UserExamController {
	return &UserExamController{
		examService:       examService,
		submissionService: submissionService,
	}
}

// ListExams godoc
// @Summary List all exams
// @Description All exam definitions with their resolved question sets.
// @Tags User - Exams
// @Produce json
// @Success 200 {array} dto.ExamResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams [get]
func (c *UserExamController) ListExams(ctx *gin.Context) {
	exams, err := c.examService.List()
	if err != nil {
		log.Error().Err(err).Msg("User ListExams: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetExam godoc
// @Summary Get one exam
// @Tags User - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{exam_id} [get]
func (c *UserExamController) GetExam(ctx *gin.Context) {
	examID, ok := controller.ParseIDParam(ctx, "exam_id")
	if !ok {
		return
	}

	exam, err := c.examService.Get(examID)
	if err != nil {
		log.Warn().Err(err).Uint("exam_id", examID).Msg("User GetExam: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// StartExam godoc
// @Summary Start an exam
// @Description Checks that the exam is active and that now falls inside its time window. Refusals come back as success=false, not as errors.
// @Tags User - Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param request body dto.StartExamDTO true "User starting the exam"
// @Success 200 {object} dto.StartExamResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{exam_id}/start [post]
func (c *UserExamController) StartExam(ctx *gin.Context) {
	examID, ok := controller.ParseIDParam(ctx, "exam_id")
	if !ok {
		return
	}

	var req dto.StartExamDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.examService.StartExam(examID, req.UserID)
	if err != nil {
		log.Warn().Err(err).Uint("exam_id", examID).Uint("user_id", req.UserID).Msg("User StartExam: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitExam godoc
// @Summary Submit a real exam attempt
// @Description Grades the answers against the exam's question set and records the result. A user can submit a real attempt for an exam at most once.
// @Tags User - Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param submission body dto.SubmitExamDTO true "Submitted answers"
// @Success 200 {object} dto.GradedResultDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam already taken"
// @Router /exams/{exam_id}/submit [post]
func (c *UserExamController) SubmitExam(ctx *gin.Context) {
	c.submit(ctx, false)
}

// SubmitPractice godoc
// @Summary Submit a practice attempt
// @Description Grades identically to a real attempt but nothing is persisted; practice never counts toward uniqueness or statistics.
// @Tags User - Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param submission body dto.SubmitExamDTO true "Submitted answers"
// @Success 200 {object} dto.GradedResultDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{exam_id}/practice [post]
func (c *UserExamController) SubmitPractice(ctx *gin.Context) {
	c.submit(ctx, true)
}

func (c *UserExamController) submit(ctx *gin.Context, isPractice bool) {
	examID, ok := controller.ParseIDParam(ctx, "exam_id")
	if !ok {
		return
	}

	var req dto.SubmitExamDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.submissionService.Submit(examID, req.UserID, req.Answers, isPractice)
	if err != nil {
		log.Warn().Err(err).Uint("exam_id", examID).Uint("user_id", req.UserID).Bool("practice", isPractice).Msg("Submit: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CheckAttempt godoc
// @Summary Check whether a user has taken an exam
// @Tags User - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.CheckAttemptResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /exams/{exam_id}/attempt-status [get]
func (c *UserExamController) CheckAttempt(ctx *gin.Context) {
	examID, ok := controller.ParseIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	userID, ok := parseUserIDQuery(ctx)
	if !ok {
		return
	}

	hasAttempted, err := c.submissionService.HasRealAttempt(examID, userID)
	if err != nil {
		log.Error().Err(err).Uint("exam_id", examID).Uint("user_id", userID).Msg("CheckAttempt: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CheckAttemptResponseDTO{HasAttempted: hasAttempted})
}

// UserResults godoc
// @Summary All real results for a user
// @Tags User - Results
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.UserResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Router /users/{user_id}/results [get]
func (c *UserExamController) UserResults(ctx *gin.Context) {
	userID, ok := controller.ParseIDParam(ctx, "user_id")
	if !ok {
		return
	}

	results, err := c.submissionService.UserResults(userID)
	if err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("UserResults: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// UserHistory godoc
// @Summary Exam history for a user
// @Description Real results only, most recent first, with exam names joined in.
// @Tags User - Results
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.UserResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Router /users/{user_id}/history [get]
func (c *UserExamController) UserHistory(ctx *gin.Context) {
	userID, ok := controller.ParseIDParam(ctx, "user_id")
	if !ok {
		return
	}

	history, err := c.submissionService.UserHistory(userID)
	if err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("UserHistory: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, history)
}

func parseUserIDQuery(ctx *gin.Context) (uint, bool) {
	var query struct {
		UserID uint `form:"user_id" binding:"required"`
	}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid or missing user_id query parameter"})
		return 0, false
	}
	return query.UserID, true
}
