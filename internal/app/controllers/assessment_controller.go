package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/app/services"
	"github.com/genius/elearning/internal/middleware"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// AssessmentController serves either exams or assignments. One instance is
// mounted per kind; both share every handler.
type AssessmentController struct {
	kind              models.AssessmentKind
	assessmentService *services.AssessmentService
	questionService   *services.QuestionService
	gradingService    *services.GradingService
}

// NewAssessmentController creates an AssessmentController for kind
func NewAssessmentController(
	kind models.AssessmentKind,
	assessmentService *services.AssessmentService,
	questionService *services.QuestionService,
	gradingService *services.GradingService,
) *AssessmentController {
	return &AssessmentController{
		kind:              kind,
		assessmentService: assessmentService,
		questionService:   questionService,
		gradingService:    gradingService,
	}
}

// List handles listing exams or assignments
// @Summary List exams or assignments
// @Description Latest date first; undated items come last
// @Tags assessments
// @Produce json
// @Param courseId query int false "Filter by course ID"
// @Param lessonId query int false "Filter by lesson ID"
// @Param type query string false "Filter by type (course, general)"
// @Param isActive query bool false "Filter by active flag"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.Assessment,pagination=dto.PaginationInfo} "Items retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid type filter or malformed courseId/lessonId"
// @Router /exams [get]
// @Router /assignments [get]
func (c *AssessmentController) List(ctx *gin.Context) {
	courseID, ok := queryID(ctx, "courseId")
	if !ok {
		return
	}
	lessonID, ok := queryID(ctx, "lessonId")
	if !ok {
		return
	}
	filter := dto.AssessmentFilter{
		CourseID: courseID,
		LessonID: lessonID,
		Type:     ctx.Query("type"),
		IsActive: helpers.OptionalBoolQuery(ctx, "isActive"),
	}

	items, pagination, err := c.assessmentService.List(ctx.Request.Context(), c.kind, filter, helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(items, pagination))
}

// Get handles retrieving one exam or assignment
// @Summary Get exam or assignment
// @Tags assessments
// @Produce json
// @Param id path int true "Exam or assignment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Assessment} "Item retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [get]
// @Router /assignments/{id} [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(c.kind))
	if !ok {
		return
	}

	item, err := c.assessmentService.GetByID(ctx.Request.Context(), c.kind, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// Questions handles listing the questions of an exam or assignment
// @Summary List questions
// @Description Questions in order. The correct answer and explanation are only returned to staff.
// @Tags assessments
// @Produce json
// @Param id path int true "Exam or assignment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Question} "Questions retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id}/questions [get]
// @Router /assignments/{id}/questions [get]
func (c *AssessmentController) Questions(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(c.kind))
	if !ok {
		return
	}

	questions, err := c.questionService.ListByAssessment(ctx.Request.Context(), c.kind, id, middleware.IsStaff(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(questions))
}

// Submit grades the caller's answers
// @Summary Submit answers
// @Description Grades the answers, stores the submission and notifies the user of the score
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam or assignment ID" Format(int64) minimum(1)
// @Param request body dto.SubmitAnswersRequest true "Answers"
// @Success 201 {object} dto.APIResponse{data=dto.SubmissionResult} "Submission graded"
// @Failure 400 {object} dto.ErrorResponse "Answers missing or the exam is not active"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id}/submissions [post]
// @Router /assignments/{id}/submissions [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", string(c.kind))
	if !ok {
		return
	}

	var req dto.SubmitAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	result, err := c.gradingService.Submit(ctx.Request.Context(), c.kind, id, userID, req.Answers)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result))
}

// Result returns the caller's latest submission
// @Summary My result
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam or assignment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Submission} "Latest submission"
// @Failure 404 {object} dto.ErrorResponse "No submission found for this exam"
// @Router /exams/{id}/results [get]
// @Router /assignments/{id}/results [get]
func (c *AssessmentController) Result(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", string(c.kind))
	if !ok {
		return
	}

	submission, err := c.gradingService.Result(ctx.Request.Context(), c.kind, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submission))
}

// Create handles exam or assignment creation
// @Summary Create exam or assignment
// @Description totalMarks starts at zero and follows the question bank
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssessmentRequest true "Exam or assignment information"
// @Success 201 {object} dto.APIResponse{data=models.Assessment} "Created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /admin/exams [post]
// @Router /admin/assignments [post]
func (c *AssessmentController) Create(ctx *gin.Context) {
	var req dto.AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	item, err := c.assessmentService.Create(ctx.Request.Context(), c.kind, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item))
}

// Update handles exam or assignment updates
// @Summary Update exam or assignment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam or assignment ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAssessmentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Assessment} "Updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/exams/{id} [put]
// @Router /admin/assignments/{id} [put]
func (c *AssessmentController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(c.kind))
	if !ok {
		return
	}

	var req dto.UpdateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	item, err := c.assessmentService.Update(ctx.Request.Context(), c.kind, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// Delete handles exam or assignment deletion
// @Summary Delete exam or assignment
// @Description Removes its questions and submissions too
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam or assignment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/exams/{id} [delete]
// @Router /admin/assignments/{id} [delete]
func (c *AssessmentController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(c.kind))
	if !ok {
		return
	}

	if err := c.assessmentService.Delete(ctx.Request.Context(), c.kind, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse(c.kind.OnModel()+" deleted successfully"))
}

// Submissions lists every submission of an exam or assignment
// @Summary List submissions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam or assignment ID" Format(int64) minimum(1)
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.Submission,pagination=dto.PaginationInfo} "Submissions retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/exams/{id}/submissions [get]
// @Router /admin/assignments/{id}/submissions [get]
func (c *AssessmentController) Submissions(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(c.kind))
	if !ok {
		return
	}

	items, pagination, err := c.gradingService.ListSubmissions(ctx.Request.Context(), c.kind, id, helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(items, pagination))
}

// ExportSubmissions downloads every submission as a spreadsheet
// @Summary Export submissions
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "Exam or assignment ID" Format(int64) minimum(1)
// @Success 200 {file} file "Spreadsheet"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/exams/{id}/submissions/export [get]
// @Router /admin/assignments/{id}/submissions/export [get]
func (c *AssessmentController) ExportSubmissions(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(c.kind))
	if !ok {
		return
	}

	sheet, filename, err := c.gradingService.ExportSubmissions(ctx.Request.Context(), c.kind, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendWorkbook(ctx, sheet, filename)
}
