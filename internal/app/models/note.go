package models

import "time"

// Note is printed study material students can order
type Note struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Title       string    `json:"title" db:"title" example:"Physics revision booklet"`
	Year        string    `json:"year" db:"year" example:"2025"`
	Description string    `json:"description,omitempty" db:"description"`
	Price       float64   `json:"price" db:"price" example:"60"`
	Image       string    `json:"image,omitempty" db:"image"`
	IsActive    bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// NoteOrderStatus is the delivery state of a note order
type NoteOrderStatus string

const (
	NoteOrderPending   NoteOrderStatus = "pending"
	NoteOrderConfirmed NoteOrderStatus = "confirmed"
	NoteOrderShipped   NoteOrderStatus = "shipped"
	NoteOrderDelivered NoteOrderStatus = "delivered"
)

// IsValid reports whether s is a known order status
func (s NoteOrderStatus) IsValid() bool {
	switch s {
	case NoteOrderPending, NoteOrderConfirmed, NoteOrderShipped, NoteOrderDelivered:
		return true
	}
	return false
}

// NoteOrderPaymentCash is the only supported note payment method
const NoteOrderPaymentCash = "cash"

// NoteOrder is a cash-on-delivery order for a note
type NoteOrder struct {
	ID            int64           `json:"id" db:"id" example:"1"`
	NoteID        int64           `json:"noteId" db:"note_id" example:"1"`
	UserID        int64           `json:"userId" db:"user_id" example:"7"`
	Name          string          `json:"name" db:"name"`
	StudentPhone  string          `json:"studentPhone" db:"student_phone"`
	GuardianPhone string          `json:"guardianPhone" db:"guardian_phone"`
	Address       string          `json:"address" db:"address"`
	PaymentMethod string          `json:"paymentMethod" db:"payment_method" example:"cash"`
	Status        NoteOrderStatus `json:"status" db:"status" example:"pending"`
	OrderedAt     time.Time       `json:"orderedAt" db:"ordered_at"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`

	Note *Note `json:"note,omitempty"`
}
