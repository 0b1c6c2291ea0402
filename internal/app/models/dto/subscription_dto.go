package dto

import (
	"time"

	"github.com/genius/elearning/internal/app/models"
)

// SubscribeRequest subscribes the caller to a course
type SubscribeRequest struct {
	CourseID        int64                `json:"courseId" binding:"required,gt=0" example:"1"`
	PaymentMethod   models.PaymentMethod `json:"paymentMethod" binding:"required,oneof=center vodafone code" example:"vodafone"`
	VodafoneReceipt string               `json:"vodafoneReceipt"`
}

// UpdateSubscriptionStatusRequest is the admin payment decision
type UpdateSubscriptionStatusRequest struct {
	Status    models.SubscriptionStatus `json:"status" binding:"required,oneof=active rejected" example:"active"`
	ExpiresAt *time.Time                `json:"expiresAt"`
}

// SubscriptionFilter narrows subscription listings
type SubscriptionFilter struct {
	UserID *int64
	Status string
}

// NotificationRequest is an admin-authored notification. Without UserID it goes to every student.
type NotificationRequest struct {
	UserID  *int64                  `json:"userId" binding:"omitempty,gt=0"`
	Title   string                  `json:"title" binding:"required"`
	Message string                  `json:"message" binding:"required"`
	Type    models.NotificationType `json:"type" binding:"omitempty,oneof=subscription exam assignment general" example:"general"`
}

// NotificationFilter narrows the caller's notifications
type NotificationFilter struct {
	Type string
	Read *bool
}

// UnreadCountResponse is returned by the unread counter
type UnreadCountResponse struct {
	Count int64 `json:"count" example:"3"`
}

// BroadcastResult reports how many users an admin notification reached
type BroadcastResult struct {
	Recipients int `json:"recipients" example:"120"`
}
