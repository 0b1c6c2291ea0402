package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/app/services"
	"github.com/genius/elearning/internal/middleware"
)

// defaultUploadFolder is used when an upload names no folder
const defaultUploadFolder = "general"

// AdminController serves staff uploads and dashboard statistics
type AdminController struct {
	uploadService *services.UploadService
	statsService  *services.StatsService
}

// NewAdminController creates a new AdminController
func NewAdminController(uploadService *services.UploadService, statsService *services.StatsService) *AdminController {
	return &AdminController{
		uploadService: uploadService,
		statsService:  statsService,
	}
}

// Upload stores an image or document
// @Summary Upload file
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File (jpeg, png, webp, gif or pdf, max 10 MB)"
// @Param folder formData string false "Target folder, e.g. courses, notes, questions"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse} "File uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing, oversized or unsupported file"
// @Router /admin/uploads [post]
func (c *AdminController) Upload(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "file is required").WithField("file")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	folder := strings.TrimSpace(ctx.PostForm("folder"))
	if folder == "" {
		folder = defaultUploadFolder
	}

	resp, err := c.uploadService.Upload(ctx.Request.Context(), file, folder, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// Stats returns dashboard counters
// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StatsResponse} "Statistics"
// @Router /admin/stats [get]
func (c *AdminController) Stats(ctx *gin.Context) {
	stats, err := c.statsService.Collect(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}
