package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// NoteService manages study notes and their cash orders
type NoteService struct {
	noteRepo NoteStore
	logger   zerolog.Logger
}

// NewNoteService creates a new NoteService
func NewNoteService(noteRepo NoteStore, logger zerolog.Logger) *NoteService {
	return &NoteService{noteRepo: noteRepo, logger: logger}
}

// Create adds a note
func (s *NoteService) Create(ctx context.Context, req *dto.NoteRequest) (*models.Note, error) {
	note := &models.Note{
		Title:       strings.TrimSpace(req.Title),
		Year:        req.Year,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		IsActive:    true,
	}
	if req.IsActive != nil {
		note.IsActive = *req.IsActive
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// GetByID returns one note
func (s *NoteService) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	return s.noteRepo.GetByID(ctx, id)
}

// List returns notes, newest first
func (s *NoteService) List(ctx context.Context, filter dto.NoteFilter, page helpers.PageRequest) ([]*models.Note, *dto.PaginationInfo, error) {
	notes, total, err := s.noteRepo.List(ctx, filter, page)
	if err != nil {
		return nil, nil, err
	}
	return notes, helpers.NewPaginationInfo(total, page), nil
}

// Update applies the present fields of req
func (s *NoteService) Update(ctx context.Context, id int64, req *dto.UpdateNoteRequest) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = strings.TrimSpace(*req.Title)
	}
	if req.Year != nil {
		note.Year = *req.Year
	}
	if req.Description != nil {
		note.Description = *req.Description
	}
	if req.Price != nil {
		note.Price = *req.Price
	}
	if req.Image != nil {
		note.Image = *req.Image
	}
	if req.IsActive != nil {
		note.IsActive = *req.IsActive
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Delete removes a note and its orders
func (s *NoteService) Delete(ctx context.Context, id int64) error {
	return s.noteRepo.Delete(ctx, id)
}

// PlaceOrder creates a pending cash order for an active note
func (s *NoteService) PlaceOrder(ctx context.Context, userID int64, req *dto.NoteOrderRequest) (*models.NoteOrder, error) {
	note, err := s.noteRepo.GetByID(ctx, req.NoteID)
	if err != nil {
		return nil, err
	}
	if !note.IsActive {
		return nil, apperrors.NewBadRequestError("This note is not available for ordering")
	}

	payment := req.PaymentMethod
	if payment == "" {
		payment = models.NoteOrderPaymentCash
	}
	if payment != models.NoteOrderPaymentCash {
		return nil, apperrors.NewValidationError("paymentMethod must be cash")
	}

	order := &models.NoteOrder{
		NoteID:        note.ID,
		UserID:        userID,
		Name:          strings.TrimSpace(req.Name),
		StudentPhone:  strings.TrimSpace(req.StudentPhone),
		GuardianPhone: strings.TrimSpace(req.GuardianPhone),
		Address:       strings.TrimSpace(req.Address),
		PaymentMethod: payment,
		Status:        models.NoteOrderPending,
	}
	if err := s.noteRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	order.Note = note

	s.logger.Info().Int64("orderId", order.ID).Int64("noteId", note.ID).Int64("userId", userID).Msg("Note order placed")
	return order, nil
}

// ListMyOrders returns the user's orders
func (s *NoteService) ListMyOrders(ctx context.Context, userID int64, page helpers.PageRequest) ([]*models.NoteOrder, *dto.PaginationInfo, error) {
	return s.listOrders(ctx, dto.NoteOrderFilter{UserID: &userID}, page)
}

// ListOrders returns every order for admins, optionally filtered by status
func (s *NoteService) ListOrders(ctx context.Context, status string, page helpers.PageRequest) ([]*models.NoteOrder, *dto.PaginationInfo, error) {
	if status != "" && !models.NoteOrderStatus(status).IsValid() {
		return nil, nil, apperrors.NewValidationError("status must be one of: pending confirmed shipped delivered")
	}
	return s.listOrders(ctx, dto.NoteOrderFilter{Status: status}, page)
}

func (s *NoteService) listOrders(ctx context.Context, filter dto.NoteOrderFilter, page helpers.PageRequest) ([]*models.NoteOrder, *dto.PaginationInfo, error) {
	orders, total, err := s.noteRepo.ListOrders(ctx, filter, page)
	if err != nil {
		return nil, nil, err
	}
	return orders, helpers.NewPaginationInfo(total, page), nil
}

// UpdateOrderStatus moves an order to a new delivery state
func (s *NoteService) UpdateOrderStatus(ctx context.Context, id int64, status models.NoteOrderStatus) (*models.NoteOrder, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("Invalid status")
	}
	if err := s.noteRepo.UpdateOrderStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.noteRepo.GetOrderByID(ctx, id)
}
