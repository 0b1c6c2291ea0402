package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/export"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// SubscriptionService handles course subscriptions and manual payment verification
type SubscriptionService struct {
	subscriptionRepo SubscriptionStore
	courseRepo       CourseStore
	notifications    *NotificationService
	logger           zerolog.Logger
	now              func() time.Time
}

// NewSubscriptionService creates a new SubscriptionService
func NewSubscriptionService(subscriptionRepo SubscriptionStore, courseRepo CourseStore, notifications *NotificationService, logger zerolog.Logger) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		courseRepo:       courseRepo,
		notifications:    notifications,
		logger:           logger,
		now:              time.Now,
	}
}

func validStatusFilter(status string) bool {
	return status == "" || status == "all" || models.SubscriptionStatus(status).IsValid()
}

// Subscribe creates a pending subscription of the user to a course
func (s *SubscriptionService) Subscribe(ctx context.Context, userID int64, req *dto.SubscribeRequest) (*models.Subscription, error) {
	if !req.PaymentMethod.IsValid() {
		return nil, apperrors.NewValidationError("paymentMethod must be one of: center vodafone code")
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	exists, err := s.subscriptionRepo.Exists(ctx, userID, course.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadySubscribed
	}

	sub := &models.Subscription{
		UserID:          userID,
		CourseID:        course.ID,
		Status:          models.SubscriptionPending,
		PaymentMethod:   req.PaymentMethod,
		VodafoneReceipt: strings.TrimSpace(req.VodafoneReceipt),
	}
	// The unique (user, course) index still guards concurrent requests
	if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	sub.Course = course

	s.logger.Info().
		Int64("subscriptionId", sub.ID).
		Int64("userId", userID).
		Int64("courseId", course.ID).
		Str("paymentMethod", string(sub.PaymentMethod)).
		Msg("Subscription requested")
	return sub, nil
}

// ListMine returns the user's subscriptions with their courses
func (s *SubscriptionService) ListMine(ctx context.Context, userID int64, status string, page helpers.PageRequest) ([]*models.Subscription, *dto.PaginationInfo, error) {
	return s.list(ctx, dto.SubscriptionFilter{UserID: &userID, Status: status}, page)
}

// GetMine returns one of the user's subscriptions. Other users' subscriptions are not found.
func (s *SubscriptionService) GetMine(ctx context.Context, id, userID int64) (*models.Subscription, error) {
	sub, err := s.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.UserID != userID {
		return nil, apperrors.ErrSubscriptionNotFound
	}
	return sub, nil
}

// ListAll returns every user's subscriptions for staff. Status "all" disables the filter.
func (s *SubscriptionService) ListAll(ctx context.Context, status string, page helpers.PageRequest) ([]*models.Subscription, *dto.PaginationInfo, error) {
	return s.list(ctx, dto.SubscriptionFilter{Status: status}, page)
}

func (s *SubscriptionService) list(ctx context.Context, filter dto.SubscriptionFilter, page helpers.PageRequest) ([]*models.Subscription, *dto.PaginationInfo, error) {
	if !validStatusFilter(filter.Status) {
		return nil, nil, apperrors.NewValidationError("status must be one of: all active pending rejected")
	}
	items, total, err := s.subscriptionRepo.List(ctx, filter, page)
	if err != nil {
		return nil, nil, err
	}
	return items, helpers.NewPaginationInfo(total, page), nil
}

// UpdateStatus records the payment decision and notifies the user
func (s *SubscriptionService) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateSubscriptionStatusRequest) (*models.Subscription, error) {
	if req.Status != models.SubscriptionActive && req.Status != models.SubscriptionRejected {
		return nil, apperrors.NewValidationError("status must be one of: active rejected")
	}

	expiresAt := req.ExpiresAt
	if req.Status == models.SubscriptionRejected {
		expiresAt = nil
	}
	if err := s.subscriptionRepo.UpdateStatus(ctx, id, req.Status, expiresAt); err != nil {
		return nil, err
	}

	sub, err := s.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("subscriptionId", id).Str("status", string(sub.Status)).Msg("Subscription status updated")

	if s.notifications != nil {
		title, message := subscriptionNotice(sub)
		if _, err := s.notifications.Notify(ctx, sub.UserID, models.NotificationSubscription, title, message); err != nil {
			s.logger.Error().Err(err).Int64("subscriptionId", id).Msg("Failed to send subscription notification")
		}
	}
	return sub, nil
}

func subscriptionNotice(sub *models.Subscription) (title, message string) {
	course := "your course"
	if sub.Course != nil && sub.Course.Title != "" {
		course = sub.Course.Title
	}
	if sub.Status == models.SubscriptionActive {
		return "Subscription activated", fmt.Sprintf("Your subscription to %s is now active", course)
	}
	return "Subscription rejected", fmt.Sprintf("Your subscription to %s was rejected", course)
}

// Export lays out subscriptions as a worksheet
func (s *SubscriptionService) Export(ctx context.Context, status string) (export.Sheet, string, error) {
	if !validStatusFilter(status) {
		return export.Sheet{}, "", apperrors.NewValidationError("status must be one of: all active pending rejected")
	}
	items, _, err := s.subscriptionRepo.List(ctx, dto.SubscriptionFilter{Status: status}, helpers.PageRequest{})
	if err != nil {
		return export.Sheet{}, "", err
	}
	filename := fmt.Sprintf("subscriptions_%s.xlsx", s.now().Format("20060102"))
	return export.Subscriptions(items), filename, nil
}
