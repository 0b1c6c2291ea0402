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

// QuestionController handles question bank operations
type QuestionController struct {
	questionService *services.QuestionService
}

// NewQuestionController creates a new QuestionController
func NewQuestionController(questionService *services.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// List handles listing the questions of an exam or assignment
// @Summary List questions
// @Description The correct answer and explanation are only returned to staff
// @Tags questions
// @Produce json
// @Param examId query int true "Exam or assignment ID"
// @Param onModel query string false "Owner model (Exam, Assignment). Defaults to Exam"
// @Success 200 {object} dto.APIResponse{data=[]models.Question} "Questions retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "examId is required"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	examID, ok := helpers.OptionalInt64Query(ctx, "examId")
	if !ok || examID == nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "examId is required").WithField("examId")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	kind := models.KindFromOnModel(ctx.Query("onModel"))

	questions, err := c.questionService.ListByAssessment(ctx.Request.Context(), kind, *examID, middleware.IsStaff(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(questions))
}

// Get returns one question with its answer key
// @Summary Get question
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Question} "Question retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "question")
	if !ok {
		return
	}

	question, err := c.questionService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(question))
}

// Create handles question creation
// @Summary Create question
// @Description Adds a question and returns the owner's recomputed total marks
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.QuestionRequest true "Question"
// @Success 201 {object} dto.APIResponse{data=services.QuestionWrite} "Question created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid options or answer key"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req dto.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	result, err := c.questionService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result))
}

// Update handles question updates
// @Summary Update question
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID" Format(int64) minimum(1)
// @Param request body dto.UpdateQuestionRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=services.QuestionWrite} "Question updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid options or answer key"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "question")
	if !ok {
		return
	}

	var req dto.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	result, err := c.questionService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// Delete handles question deletion
// @Summary Delete question
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=services.QuestionWrite} "Question deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "question")
	if !ok {
		return
	}

	total, err := c.questionService.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	resp := dto.NewSuccessResponse(services.QuestionWrite{TotalMarks: total})
	resp.Message = "Question deleted successfully"
	ctx.JSON(http.StatusOK, resp)
}
