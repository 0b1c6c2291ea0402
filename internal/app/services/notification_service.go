package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/helpers"
	"github.com/genius/elearning/internal/pkg/websocket"
)

// EventNotification is the real-time event type carrying a new notification
const EventNotification = "notification"

// NotificationService stores notifications and pushes them to connected clients
type NotificationService struct {
	notificationRepo NotificationStore
	userRepo         UserStore
	publisher        EventPublisher
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService. publisher may be nil.
func NewNotificationService(notificationRepo NotificationStore, userRepo UserStore, publisher EventPublisher, logger zerolog.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

func (s *NotificationService) publish(items ...*models.Notification) {
	if s.publisher == nil {
		return
	}
	msgs := make([]websocket.Message, 0, len(items))
	for _, n := range items {
		msgs = append(msgs, websocket.Message{UserID: n.UserID, Data: n})
	}
	queued := s.publisher.PushToUsers(EventNotification, msgs)
	s.logger.Debug().Int("recipients", len(items)).Int("pushed", queued).Msg("Notifications pushed")
}

// Notify stores a notification for one user and pushes it
func (s *NotificationService) Notify(ctx context.Context, userID int64, kind models.NotificationType, title, message string) (*models.Notification, error) {
	n := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, err
	}
	s.publish(n)
	return n, nil
}

// Send delivers an admin notification to one user, or to every student when no user is given
func (s *NotificationService) Send(ctx context.Context, req *dto.NotificationRequest) (*dto.BroadcastResult, error) {
	kind := req.Type
	if kind == "" {
		kind = models.NotificationGeneral
	}
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("type must be one of: subscription exam assignment general")
	}
	title, message := strings.TrimSpace(req.Title), strings.TrimSpace(req.Message)
	if title == "" || message == "" {
		return nil, apperrors.NewValidationError("title and message are required")
	}

	var recipients []int64
	if req.UserID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.UserID); err != nil {
			return nil, err
		}
		recipients = []int64{*req.UserID}
	} else {
		ids, err := s.userRepo.IDsByRole(ctx, models.RoleStudent)
		if err != nil {
			return nil, err
		}
		recipients = ids
	}

	items := make([]*models.Notification, 0, len(recipients))
	for _, id := range recipients {
		items = append(items, &models.Notification{UserID: id, Title: title, Message: message, Type: kind})
	}
	if err := s.notificationRepo.CreateMany(ctx, items); err != nil {
		return nil, err
	}
	s.publish(items...)

	s.logger.Info().Int("recipients", len(items)).Str("type", string(kind)).Msg("Notification sent")
	return &dto.BroadcastResult{Recipients: len(items)}, nil
}

// List returns the user's notifications, newest first
func (s *NotificationService) List(ctx context.Context, userID int64, filter dto.NotificationFilter, page helpers.PageRequest) ([]*models.Notification, *dto.PaginationInfo, error) {
	items, total, err := s.notificationRepo.ListByUser(ctx, userID, filter, page)
	if err != nil {
		return nil, nil, err
	}
	return items, helpers.NewPaginationInfo(total, page), nil
}

// MarkRead marks one of the user's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, id, userID int64) (*models.Notification, error) {
	return s.notificationRepo.MarkRead(ctx, id, userID)
}

// MarkAllRead marks every unread notification of the user as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// UnreadCount counts the user's unread notifications
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (*dto.UnreadCountResponse, error) {
	n, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{Count: n}, nil
}
