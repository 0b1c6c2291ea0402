package models

import "time"

// SubscriptionStatus tracks manual payment verification
type SubscriptionStatus string

const (
	SubscriptionPending  SubscriptionStatus = "pending"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionRejected SubscriptionStatus = "rejected"
)

// IsValid reports whether s is a known status
func (s SubscriptionStatus) IsValid() bool {
	return s == SubscriptionPending || s == SubscriptionActive || s == SubscriptionRejected
}

// PaymentMethod is how a subscription was paid
type PaymentMethod string

const (
	PaymentCenter   PaymentMethod = "center"
	PaymentVodafone PaymentMethod = "vodafone"
	PaymentCode     PaymentMethod = "code"
)

// IsValid reports whether m is a known payment method
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCenter || m == PaymentVodafone || m == PaymentCode
}

// Subscription is a user's access grant to a course
type Subscription struct {
	ID              int64              `json:"id" db:"id" example:"1"`
	UserID          int64              `json:"userId" db:"user_id" example:"7"`
	CourseID        int64              `json:"courseId" db:"course_id" example:"1"`
	Status          SubscriptionStatus `json:"status" db:"status" example:"pending"`
	SubscribedAt    time.Time          `json:"subscribedAt" db:"subscribed_at"`
	PaymentMethod   PaymentMethod      `json:"paymentMethod,omitempty" db:"payment_method" example:"vodafone"`
	VodafoneReceipt string             `json:"vodafoneReceipt,omitempty" db:"vodafone_receipt"`
	ExpiresAt       *time.Time         `json:"expiresAt,omitempty" db:"expires_at"`
	CreatedAt       time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time          `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Course *Course      `json:"course,omitempty"`
	User   *UserSummary `json:"user,omitempty"`
}

// IsActiveAt reports whether the subscription grants access at t
func (s *Subscription) IsActiveAt(t time.Time) bool {
	if s.Status != SubscriptionActive {
		return false
	}
	return s.ExpiresAt == nil || s.ExpiresAt.After(t)
}
