package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// AssessmentService manages exams and assignments. Both kinds share every rule.
type AssessmentService struct {
	assessmentRepo AssessmentStore
	courseRepo     CourseStore
	lessonRepo     LessonStore
	logger         zerolog.Logger
}

// NewAssessmentService creates a new AssessmentService
func NewAssessmentService(assessmentRepo AssessmentStore, courseRepo CourseStore, lessonRepo LessonStore, logger zerolog.Logger) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		logger:         logger,
	}
}

// validateReferences checks the course and lesson an assessment points at.
// A lesson without a course makes the assessment inherit the lesson's course.
func (s *AssessmentService) validateReferences(ctx context.Context, a *models.Assessment) error {
	if !a.Type.IsValid() {
		return apperrors.NewValidationError("type must be one of: course general")
	}

	if a.LessonID != nil {
		lesson, err := s.lessonRepo.GetByID(ctx, *a.LessonID)
		if err != nil {
			if errors.Is(err, apperrors.ErrLessonNotFound) {
				return apperrors.NewBadRequestError("Lesson not found")
			}
			return err
		}
		if a.CourseID == nil {
			a.CourseID = &lesson.CourseID
		} else if *a.CourseID != lesson.CourseID {
			return apperrors.NewValidationError("Lesson does not belong to the given course")
		}
	}

	if a.Type == models.AssessmentTypeCourse && a.CourseID == nil {
		return apperrors.NewValidationError("courseId is required for course assessments")
	}

	if a.CourseID != nil {
		exists, err := s.courseRepo.Exists(ctx, *a.CourseID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewBadRequestError("Course not found")
		}
	}
	return nil
}

// Create adds an exam or assignment with zero total marks
func (s *AssessmentService) Create(ctx context.Context, kind models.AssessmentKind, req *dto.AssessmentRequest) (*models.Assessment, error) {
	a := &models.Assessment{
		Kind:                kind,
		CourseID:            req.CourseID,
		LessonID:            req.LessonID,
		Title:               strings.TrimSpace(req.Title),
		Date:                req.Date,
		TimeLimitMin:        req.TimeLimitMin,
		Type:                req.Type,
		IsActive:            true,
		MandatoryAttendance: req.MandatoryAttendance,
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	if err := s.validateReferences(ctx, a); err != nil {
		return nil, err
	}
	if err := s.assessmentRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info().Str("kind", string(kind)).Int64("id", a.ID).Str("title", a.Title).Msg("Assessment created")
	return a, nil
}

// GetByID returns one exam or assignment
func (s *AssessmentService) GetByID(ctx context.Context, kind models.AssessmentKind, id int64) (*models.Assessment, error) {
	return s.assessmentRepo.GetByID(ctx, kind, id)
}

// List returns exams or assignments, latest date first
func (s *AssessmentService) List(ctx context.Context, kind models.AssessmentKind, filter dto.AssessmentFilter, page helpers.PageRequest) ([]*models.Assessment, *dto.PaginationInfo, error) {
	if filter.Type != "" && !models.AssessmentType(filter.Type).IsValid() {
		return nil, nil, apperrors.NewValidationError("type must be one of: course general")
	}
	items, total, err := s.assessmentRepo.List(ctx, kind, filter, page)
	if err != nil {
		return nil, nil, err
	}
	return items, helpers.NewPaginationInfo(total, page), nil
}

// Update applies the present fields of req. Total marks are left to question writes.
func (s *AssessmentService) Update(ctx context.Context, kind models.AssessmentKind, id int64, req *dto.UpdateAssessmentRequest) (*models.Assessment, error) {
	a, err := s.assessmentRepo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if req.CourseID != nil {
		a.CourseID = req.CourseID
	}
	if req.LessonID != nil {
		a.LessonID = req.LessonID
	}
	if req.Title != nil {
		a.Title = strings.TrimSpace(*req.Title)
	}
	if req.Date != nil {
		a.Date = req.Date
	}
	if req.TimeLimitMin != nil {
		a.TimeLimitMin = *req.TimeLimitMin
	}
	if req.Type != nil {
		a.Type = *req.Type
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	if req.MandatoryAttendance != nil {
		a.MandatoryAttendance = *req.MandatoryAttendance
	}

	if err := s.validateReferences(ctx, a); err != nil {
		return nil, err
	}
	if err := s.assessmentRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an exam or assignment with its questions and submissions
func (s *AssessmentService) Delete(ctx context.Context, kind models.AssessmentKind, id int64) error {
	if err := s.assessmentRepo.Delete(ctx, kind, id); err != nil {
		return err
	}
	s.logger.Info().Str("kind", string(kind)).Int64("id", id).Msg("Assessment deleted")
	return nil
}
