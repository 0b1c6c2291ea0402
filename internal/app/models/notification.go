package models

import "time"

// NotificationType categorizes notifications
type NotificationType string

const (
	NotificationSubscription NotificationType = "subscription"
	NotificationExam         NotificationType = "exam"
	NotificationAssignment   NotificationType = "assignment"
	NotificationGeneral      NotificationType = "general"
)

// IsValid reports whether t is a known notification type
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationSubscription, NotificationExam, NotificationAssignment, NotificationGeneral:
		return true
	}
	return false
}

// Notification is a message addressed to one user
type Notification struct {
	ID        int64            `json:"id" db:"id" example:"1"`
	UserID    int64            `json:"userId" db:"user_id" example:"7"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type" example:"general"`
	Read      bool             `json:"read" db:"read" example:"false"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time        `json:"updatedAt" db:"updated_at"`
}
