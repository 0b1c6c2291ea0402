package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/app/services"
	"github.com/genius/elearning/internal/middleware"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// NotificationController handles the caller's notifications and admin broadcasts
type NotificationController struct {
	notificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// List lists the caller's notifications
// @Summary My notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param type query string false "Filter by type (subscription, exam, assignment, general)"
// @Param read query bool false "Filter by read flag"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.Notification,pagination=dto.PaginationInfo} "Notifications retrieved successfully"
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	filter := dto.NotificationFilter{
		Type: ctx.Query("type"),
		Read: helpers.OptionalBoolQuery(ctx, "read"),
	}
	items, pagination, err := c.notificationService.List(ctx.Request.Context(), userID, filter, helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(items, pagination))
}

// MarkRead marks one notification as read
// @Summary Mark notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Notification} "Notification marked as read"
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Router /notifications/{id}/read [put]
// @Router /notifications/{id} [patch]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", "notification")
	if !ok {
		return
	}

	n, err := c.notificationService.MarkRead(ctx.Request.Context(), id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(n))
}

// MarkAllRead marks every notification of the caller as read
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "All notifications marked as read"
// @Router /notifications/read-all [put]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	updated, err := c.notificationService.MarkAllRead(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	resp := dto.NewSuccessResponse(gin.H{"updated": updated})
	resp.Message = "All notifications marked as read"
	ctx.JSON(http.StatusOK, resp)
}

// UnreadCount counts the caller's unread notifications
// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UnreadCountResponse} "Unread count"
// @Router /notifications/unread-count [get]
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	count, err := c.notificationService.UnreadCount(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(count))
}

// Send delivers a notification to one user or to every student
// @Summary Send notification
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NotificationRequest true "Notification; omit userId to broadcast to students"
// @Success 201 {object} dto.APIResponse{data=dto.BroadcastResult} "Notification sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/notifications [post]
func (c *NotificationController) Send(ctx *gin.Context) {
	var req dto.NotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	result, err := c.notificationService.Send(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result))
}
