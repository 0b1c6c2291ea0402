package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// CourseService manages courses
type CourseService struct {
	courseRepo CourseStore
	levelRepo  EducationalLevelStore
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo CourseStore, levelRepo EducationalLevelStore, logger zerolog.Logger) *CourseService {
	return &CourseService{courseRepo: courseRepo, levelRepo: levelRepo, logger: logger}
}

// Create adds a course and returns it with its educational level
func (s *CourseService) Create(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	if err := checkLevel(ctx, s.levelRepo, req.EducationalLevelID); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:              strings.TrimSpace(req.Title),
		Year:               req.Year,
		ShortDescription:   req.ShortDescription,
		FullDescription:    req.FullDescription,
		Price:              req.Price,
		Image:              req.Image,
		VodafoneNumber:     req.VodafoneNumber,
		Month:              req.Month,
		IsActive:           true,
		EducationalLevelID: req.EducationalLevelID,
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("courseId", course.ID).Str("title", course.Title).Msg("Course created")

	return s.courseRepo.GetByID(ctx, course.ID)
}

// GetByID returns a course with its educational level
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// List returns courses, newest first
func (s *CourseService) List(ctx context.Context, filter dto.CourseFilter, page helpers.PageRequest) ([]*models.Course, *dto.PaginationInfo, error) {
	courses, total, err := s.courseRepo.List(ctx, filter, page)
	if err != nil {
		return nil, nil, err
	}
	return courses, helpers.NewPaginationInfo(total, page), nil
}

// Update applies the present fields of req
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		course.Title = strings.TrimSpace(*req.Title)
	}
	if req.Year != nil {
		course.Year = *req.Year
	}
	if req.ShortDescription != nil {
		course.ShortDescription = *req.ShortDescription
	}
	if req.FullDescription != nil {
		course.FullDescription = *req.FullDescription
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Image != nil {
		course.Image = *req.Image
	}
	if req.VodafoneNumber != nil {
		course.VodafoneNumber = *req.VodafoneNumber
	}
	if req.Month != nil {
		course.Month = *req.Month
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}
	if req.EducationalLevelID != nil {
		if err := checkLevel(ctx, s.levelRepo, req.EducationalLevelID); err != nil {
			return nil, err
		}
		course.EducationalLevelID = req.EducationalLevelID
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return s.courseRepo.GetByID(ctx, id)
}

// Delete removes a course with its lessons, assessments and subscriptions
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("courseId", id).Msg("Course deleted")
	return nil
}
