package admin

import (
	"net/http"
	"strconv"

	"github.com/anayon/examhub/internal/controller"
	"github.com/anayon/examhub/internal/dto"
	"github.com/anayon/examhub/internal/repository"
	"github.com/anayon/examhub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminExamController struct {
	examService service.ExamService
}

func NewAdminExamController(examService service.ExamService) *AdminExamController {
	return &AdminExamController{examService: examService}
}

// CreateExam godoc
// @Summary (Admin) Create a new exam
// @Description Create an exam with its fixed question selection. The selection must resolve against the question bank and match the declared total.
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param exam body dto.ExamCreateDTO true "Exam definition"
// @Success 201 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Validation error (question count mismatch, below minimum, malformed fields)"
// @Failure 404 {object} dto.ErrorResponse "Unknown question reference"
// @Router /admin/exams [post]
func (c *AdminExamController) CreateExam(ctx *gin.Context) {
	var req dto.ExamCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	exam, err := c.examService.Create(req)
	if err != nil {
		log.Warn().Err(err).Str("name", req.Name).Msg("Admin CreateExam: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// UpdateExam godoc
// @Summary (Admin) Update an exam
// @Description Partially update an exam. A new question selection or total is re-validated before anything is applied.
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param exam body dto.ExamUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Exam or question not found"
// @Router /admin/exams/{exam_id} [put]
func (c *AdminExamController) UpdateExam(ctx *gin.Context) {
	examID, ok := controller.ParseIDParam(ctx, "exam_id")
	if !ok {
		return
	}

	var req dto.ExamUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	exam, err := c.examService.Update(examID, req)
	if err != nil {
		log.Warn().Err(err).Uint("exam_id", examID).Msg("Admin UpdateExam: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// DeleteExam godoc
// @Summary (Admin) Delete an exam
// @Description Remove the exam definition. Existing results are kept.
// @Tags Admin - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/exams/{exam_id} [delete]
func (c *AdminExamController) DeleteExam(ctx *gin.Context) {
	examID, ok := controller.ParseIDParam(ctx, "exam_id")
	if !ok {
		return
	}

	if err := c.examService.Delete(examID); err != nil {
		log.Warn().Err(err).Uint("exam_id", examID).Msg("Admin DeleteExam: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListQuestions godoc
// @Summary (Admin) Browse the question bank
// @Description List bank questions, optionally narrowed to one branch of the course/group/subject/chapter/sub-chapter hierarchy, for building an exam's question selection.
// @Tags Admin - Exams
// @Produce json
// @Param course_id query int false "Course ID"
// @Param group_id query int false "Group ID"
// @Param subject_id query int false "Subject ID"
// @Param chapter_id query int false "Chapter ID"
// @Param sub_chapter_id query int false "Sub-chapter ID"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed filter parameter"
// @Router /admin/questions [get]
func (c *AdminExamController) ListQuestions(ctx *gin.Context) {
	var filter repository.QuestionFilter
	for name, target := range map[string]**uint{
		"course_id":      &filter.CourseID,
		"group_id":       &filter.GroupID,
		"subject_id":     &filter.SubjectID,
		"chapter_id":     &filter.ChapterID,
		"sub_chapter_id": &filter.SubChapterID,
	} {
		raw := ctx.Query(name)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name})
			return
		}
		value := uint(id)
		*target = &value
	}

	questions, err := c.examService.BrowseQuestions(filter)
	if err != nil {
		log.Warn().Err(err).Msg("Admin ListQuestions: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}
