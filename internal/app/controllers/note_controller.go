package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/app/services"
	"github.com/genius/elearning/internal/middleware"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// NoteController handles study notes and their orders
type NoteController struct {
	noteService *services.NoteService
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService *services.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

// List handles listing notes
// @Summary List notes
// @Tags notes
// @Produce json
// @Param year query string false "Filter by year"
// @Param isActive query bool false "Filter by active flag"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.Note,pagination=dto.PaginationInfo} "Notes retrieved successfully"
// @Router /notes [get]
func (c *NoteController) List(ctx *gin.Context) {
	filter := dto.NoteFilter{
		Year:     ctx.Query("year"),
		IsActive: helpers.OptionalBoolQuery(ctx, "isActive"),
	}

	notes, pagination, err := c.noteService.List(ctx.Request.Context(), filter, helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(notes, pagination))
}

// Get handles retrieving one note
// @Summary Get note
// @Tags notes
// @Produce json
// @Param id path int true "Note ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Note} "Note retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/{id} [get]
func (c *NoteController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "note")
	if !ok {
		return
	}

	note, err := c.noteService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(note))
}

// Create handles note creation
// @Summary Create note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NoteRequest true "Note information"
// @Success 201 {object} dto.APIResponse{data=models.Note} "Note created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /notes [post]
func (c *NoteController) Create(ctx *gin.Context) {
	var req dto.NoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	note, err := c.noteService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(note))
}

// Update handles note updates
// @Summary Update note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID" Format(int64) minimum(1)
// @Param request body dto.UpdateNoteRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Note} "Note updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/{id} [put]
func (c *NoteController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "note")
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	note, err := c.noteService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(note))
}

// Delete handles note deletion
// @Summary Delete note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Note deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/{id} [delete]
func (c *NoteController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "note")
	if !ok {
		return
	}

	if err := c.noteService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Note deleted successfully"))
}

// PlaceOrder orders a note for cash on delivery
// @Summary Order a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NoteOrderRequest true "Delivery details"
// @Success 201 {object} dto.APIResponse{data=models.NoteOrder} "Order placed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or the note is not available"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/orders [post]
func (c *NoteController) PlaceOrder(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.NoteOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	order, err := c.noteService.PlaceOrder(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(order))
}

// MyOrders lists the caller's note orders
// @Summary My note orders
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.NoteOrder,pagination=dto.PaginationInfo} "Orders retrieved successfully"
// @Router /notes/orders/my [get]
func (c *NoteController) MyOrders(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	orders, pagination, err := c.noteService.ListMyOrders(ctx.Request.Context(), userID, helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(orders, pagination))
}

// ListOrders lists every note order for admins
// @Summary List note orders
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending, confirmed, shipped, delivered)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.NoteOrder,pagination=dto.PaginationInfo} "Orders retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /notes/orders [get]
func (c *NoteController) ListOrders(ctx *gin.Context) {
	orders, pagination, err := c.noteService.ListOrders(ctx.Request.Context(), ctx.Query("status"), helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(orders, pagination))
}

// UpdateOrderStatus moves an order to a new delivery state
// @Summary Update note order status
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID" Format(int64) minimum(1)
// @Param request body dto.UpdateNoteOrderStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.NoteOrder} "Order updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Note order not found"
// @Router /notes/orders/{id}/status [put]
func (c *NoteController) UpdateOrderStatus(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "order")
	if !ok {
		return
	}

	var req dto.UpdateNoteOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	order, err := c.noteService.UpdateOrderStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(order))
}
