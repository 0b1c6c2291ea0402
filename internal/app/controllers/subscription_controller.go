package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/app/services"
	"github.com/genius/elearning/internal/middleware"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// SubscriptionController handles course subscriptions and payment verification
type SubscriptionController struct {
	subscriptionService *services.SubscriptionService
	uploadService       *services.UploadService
}

// NewSubscriptionController creates a new SubscriptionController
func NewSubscriptionController(subscriptionService *services.SubscriptionService, uploadService *services.UploadService) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
		uploadService:       uploadService,
	}
}

// ListMine lists the caller's subscriptions
// @Summary My subscriptions
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (active, pending, rejected)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.Subscription,pagination=dto.PaginationInfo} "Subscriptions retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Router /subscriptions [get]
func (c *SubscriptionController) ListMine(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	items, pagination, err := c.subscriptionService.ListMine(ctx.Request.Context(), userID, ctx.Query("status"), helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(items, pagination))
}

// Subscribe requests access to a course
// @Summary Subscribe to a course
// @Description Creates a pending subscription that staff verify manually
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubscribeRequest true "Course and payment"
// @Success 201 {object} dto.APIResponse{data=models.Subscription} "Subscription requested"
// @Failure 400 {object} dto.ErrorResponse "Already subscribed to this course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /subscriptions [post]
func (c *SubscriptionController) Subscribe(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	sub, err := c.subscriptionService.Subscribe(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(sub))
}

// GetMine returns one of the caller's subscriptions
// @Summary Get my subscription
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subscription ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Subscription} "Subscription retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Subscription not found"
// @Router /subscriptions/{id} [get]
func (c *SubscriptionController) GetMine(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", "subscription")
	if !ok {
		return
	}

	sub, err := c.subscriptionService.GetMine(ctx.Request.Context(), id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(sub))
}

// UploadReceipt stores a vodafone payment receipt
// @Summary Upload payment receipt
// @Description Stores the receipt image; send the returned path as vodafoneReceipt when subscribing
// @Tags subscriptions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Receipt image"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse} "Receipt uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing, oversized or unsupported file"
// @Router /subscriptions/receipt [post]
func (c *SubscriptionController) UploadReceipt(ctx *gin.Context) {
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

	resp, err := c.uploadService.UploadReceipt(ctx.Request.Context(), file, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// ListAll lists every subscription for staff
// @Summary List subscriptions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (all, active, pending, rejected)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.Subscription,pagination=dto.PaginationInfo} "Subscriptions retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Router /admin/subscriptions [get]
func (c *SubscriptionController) ListAll(ctx *gin.Context) {
	items, pagination, err := c.subscriptionService.ListAll(ctx.Request.Context(), ctx.Query("status"), helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(items, pagination))
}

// Export downloads subscriptions as a spreadsheet
// @Summary Export subscriptions
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param status query string false "Filter by status (all, active, pending, rejected)"
// @Success 200 {file} file "Spreadsheet"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Router /admin/subscriptions/export [get]
func (c *SubscriptionController) Export(ctx *gin.Context) {
	sheet, filename, err := c.subscriptionService.Export(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendWorkbook(ctx, sheet, filename)
}

// UpdateStatus records the payment decision
// @Summary Update subscription status
// @Description Activates or rejects a subscription and notifies the student
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subscription ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSubscriptionStatusRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=models.Subscription} "Subscription updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Subscription not found"
// @Router /admin/subscriptions/{id}/status [put]
func (c *SubscriptionController) UpdateStatus(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "subscription")
	if !ok {
		return
	}

	var req dto.UpdateSubscriptionStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	sub, err := c.subscriptionService.UpdateStatus(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(sub))
}
