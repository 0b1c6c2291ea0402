package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/app/services"
	"github.com/genius/elearning/internal/middleware"
)

// LessonController handles staff lesson management
type LessonController struct {
	lessonService *services.LessonService
}

// NewLessonController creates a new LessonController
func NewLessonController(lessonService *services.LessonService) *LessonController {
	return &LessonController{lessonService: lessonService}
}

// Get returns the full lesson, including a locked video URL
// @Summary Get lesson
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Lesson} "Lesson retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /admin/lessons/{id} [get]
func (c *LessonController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "lesson")
	if !ok {
		return
	}

	lesson, err := c.lessonService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(lesson))
}

// Create handles lesson creation
// @Summary Create lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LessonRequest true "Lesson information"
// @Success 201 {object} dto.APIResponse{data=models.Lesson} "Lesson created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/lessons [post]
func (c *LessonController) Create(ctx *gin.Context) {
	var req dto.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	lesson, err := c.lessonService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(lesson))
}

// Update handles lesson updates
// @Summary Update lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID" Format(int64) minimum(1)
// @Param request body dto.UpdateLessonRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Lesson} "Lesson updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /admin/lessons/{id} [put]
func (c *LessonController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "lesson")
	if !ok {
		return
	}

	var req dto.UpdateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	lesson, err := c.lessonService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(lesson))
}

// Delete handles lesson deletion
// @Summary Delete lesson
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Lesson deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /admin/lessons/{id} [delete]
func (c *LessonController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "lesson")
	if !ok {
		return
	}

	if err := c.lessonService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Lesson deleted successfully"))
}
