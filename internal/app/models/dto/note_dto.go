package dto

import "github.com/genius/elearning/internal/app/models"

// NoteRequest creates a note
type NoteRequest struct {
	Title       string  `json:"title" binding:"required"`
	Year        string  `json:"year" binding:"required" example:"2025"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0" example:"60"`
	Image       string  `json:"image"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateNoteRequest partially updates a note
type UpdateNoteRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	Year        *string  `json:"year" binding:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Image       *string  `json:"image"`
	IsActive    *bool    `json:"isActive"`
}

// NoteFilter narrows the note listing
type NoteFilter struct {
	Year     string
	IsActive *bool
}

// NoteOrderRequest places a cash-on-delivery order
type NoteOrderRequest struct {
	NoteID        int64  `json:"noteId" binding:"required,gt=0" example:"1"`
	Name          string `json:"name" binding:"required"`
	StudentPhone  string `json:"studentPhone" binding:"required,phone"`
	GuardianPhone string `json:"guardianPhone" binding:"required,phone"`
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,oneof=cash" example:"cash"`
}

// UpdateNoteOrderStatusRequest changes an order's delivery state
type UpdateNoteOrderStatusRequest struct {
	Status models.NoteOrderStatus `json:"status" binding:"required" example:"shipped"`
}

// NoteOrderFilter narrows order listings
type NoteOrderFilter struct {
	UserID *int64
	Status string
}
