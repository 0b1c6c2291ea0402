package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/app/services"
	"github.com/genius/elearning/internal/middleware"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// EducationalLevelController handles educational level operations
type EducationalLevelController struct {
	levelService *services.EducationalLevelService
}

// NewEducationalLevelController creates a new EducationalLevelController
func NewEducationalLevelController(levelService *services.EducationalLevelService) *EducationalLevelController {
	return &EducationalLevelController{levelService: levelService}
}

// List handles listing educational levels
// @Summary List educational levels
// @Description Levels sorted by their display order
// @Tags educational-levels
// @Produce json
// @Param level query string false "Filter by stage (primary, prep, secondary)"
// @Param isActive query bool false "Filter by active flag"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.EducationalLevel,pagination=dto.PaginationInfo} "Levels retrieved successfully"
// @Router /educational-levels [get]
func (c *EducationalLevelController) List(ctx *gin.Context) {
	filter := dto.EducationalLevelFilter{
		Level:    ctx.Query("level"),
		IsActive: helpers.OptionalBoolQuery(ctx, "isActive"),
	}

	levels, pagination, err := c.levelService.List(ctx.Request.Context(), filter, helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(levels, pagination))
}

// Get handles retrieving one educational level
// @Summary Get educational level
// @Tags educational-levels
// @Produce json
// @Param id path int true "Level ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.EducationalLevel} "Level retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid level ID"
// @Failure 404 {object} dto.ErrorResponse "Educational level not found"
// @Router /educational-levels/{id} [get]
func (c *EducationalLevelController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "educational level")
	if !ok {
		return
	}

	level, err := c.levelService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(level))
}

// Create handles educational level creation
// @Summary Create educational level
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EducationalLevelRequest true "Level information"
// @Success 201 {object} dto.APIResponse{data=models.EducationalLevel} "Level created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Educational level already exists"
// @Router /admin/educational-levels [post]
func (c *EducationalLevelController) Create(ctx *gin.Context) {
	var req dto.EducationalLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	level, err := c.levelService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(level))
}

// Update handles educational level updates
// @Summary Update educational level
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Level ID" Format(int64) minimum(1)
// @Param request body dto.UpdateEducationalLevelRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.EducationalLevel} "Level updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Educational level not found"
// @Failure 409 {object} dto.ErrorResponse "Educational level already exists"
// @Router /admin/educational-levels/{id} [put]
func (c *EducationalLevelController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "educational level")
	if !ok {
		return
	}

	var req dto.UpdateEducationalLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	level, err := c.levelService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(level))
}

// Delete handles educational level deletion
// @Summary Delete educational level
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Level ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Educational level deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Educational level not found"
// @Router /admin/educational-levels/{id} [delete]
func (c *EducationalLevelController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "educational level")
	if !ok {
		return
	}

	if err := c.levelService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Educational level deleted successfully"))
}
