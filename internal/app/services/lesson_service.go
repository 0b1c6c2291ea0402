package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// LessonService manages lessons and gates locked videos
type LessonService struct {
	lessonRepo       LessonStore
	courseRepo       CourseStore
	subscriptionRepo SubscriptionStore
	logger           zerolog.Logger
	now              func() time.Time
}

// NewLessonService creates a new LessonService
func NewLessonService(lessonRepo LessonStore, courseRepo CourseStore, subscriptionRepo SubscriptionStore, logger zerolog.Logger) *LessonService {
	return &LessonService{
		lessonRepo:       lessonRepo,
		courseRepo:       courseRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *LessonService) ensureCourse(ctx context.Context, courseID int64) error {
	exists, err := s.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// canWatch reports whether viewer may see locked videos of the course
func (s *LessonService) canWatch(ctx context.Context, courseID int64, viewer *models.User) (bool, error) {
	if viewer == nil {
		return false, nil
	}
	if viewer.Role.IsStaff() {
		return true, nil
	}
	return s.subscriptionRepo.HasActive(ctx, viewer.ID, courseID, s.now())
}

// ListByCourse returns a course's lessons in order. Locked lessons lose their
// video URL unless viewer is staff or holds an active subscription.
func (s *LessonService) ListByCourse(ctx context.Context, courseID int64, viewer *models.User, page helpers.PageRequest) ([]*models.Lesson, *dto.PaginationInfo, error) {
	if err := s.ensureCourse(ctx, courseID); err != nil {
		return nil, nil, err
	}

	lessons, total, err := s.lessonRepo.ListByCourse(ctx, courseID, page)
	if err != nil {
		return nil, nil, err
	}

	allowed, err := s.canWatch(ctx, courseID, viewer)
	if err != nil {
		return nil, nil, err
	}
	if !allowed {
		for _, l := range lessons {
			if l.IsLocked {
				l.VideoURL = ""
			}
		}
	}

	return lessons, helpers.NewPaginationInfo(total, page), nil
}

// GetByID returns the full lesson
func (s *LessonService) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	return s.lessonRepo.GetByID(ctx, id)
}

// Create adds a lesson to an existing course
func (s *LessonService) Create(ctx context.Context, req *dto.LessonRequest) (*models.Lesson, error) {
	if err := s.ensureCourse(ctx, req.CourseID); err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		CourseID:    req.CourseID,
		Title:       strings.TrimSpace(req.Title),
		Duration:    req.Duration,
		IsLocked:    req.IsLocked,
		VideoURL:    req.VideoURL,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// Update applies the present fields of req
func (s *LessonService) Update(ctx context.Context, id int64, req *dto.UpdateLessonRequest) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		lesson.Title = strings.TrimSpace(*req.Title)
	}
	if req.Duration != nil {
		lesson.Duration = *req.Duration
	}
	if req.IsLocked != nil {
		lesson.IsLocked = *req.IsLocked
	}
	if req.VideoURL != nil {
		lesson.VideoURL = *req.VideoURL
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}

	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// Delete removes a lesson
func (s *LessonService) Delete(ctx context.Context, id int64) error {
	return s.lessonRepo.Delete(ctx, id)
}
