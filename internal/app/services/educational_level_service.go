package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// EducationalLevelService manages school grades
type EducationalLevelService struct {
	levelRepo EducationalLevelStore
	logger    zerolog.Logger
}

// NewEducationalLevelService creates a new EducationalLevelService
func NewEducationalLevelService(levelRepo EducationalLevelStore, logger zerolog.Logger) *EducationalLevelService {
	return &EducationalLevelService{levelRepo: levelRepo, logger: logger}
}

// Create adds an educational level. Duplicate name, Arabic name or order is a conflict.
func (s *EducationalLevelService) Create(ctx context.Context, req *dto.EducationalLevelRequest) (*models.EducationalLevel, error) {
	level := &models.EducationalLevel{
		Name:     req.Name,
		NameAr:   req.NameAr,
		Level:    req.Level,
		Year:     req.Year,
		IsActive: true,
		Order:    req.Order,
	}
	if req.IsActive != nil {
		level.IsActive = *req.IsActive
	}
	if !level.Level.IsValid() {
		return nil, apperrors.NewValidationError("level must be one of: primary prep secondary")
	}

	if err := s.levelRepo.Create(ctx, level); err != nil {
		return nil, err
	}
	return level, nil
}

// GetByID returns one educational level
func (s *EducationalLevelService) GetByID(ctx context.Context, id int64) (*models.EducationalLevel, error) {
	return s.levelRepo.GetByID(ctx, id)
}

// List returns levels sorted by order
func (s *EducationalLevelService) List(ctx context.Context, filter dto.EducationalLevelFilter, page helpers.PageRequest) ([]*models.EducationalLevel, *dto.PaginationInfo, error) {
	levels, total, err := s.levelRepo.List(ctx, filter, page)
	if err != nil {
		return nil, nil, err
	}
	return levels, helpers.NewPaginationInfo(total, page), nil
}

// Update applies the present fields of req
func (s *EducationalLevelService) Update(ctx context.Context, id int64, req *dto.UpdateEducationalLevelRequest) (*models.EducationalLevel, error) {
	level, err := s.levelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		level.Name = *req.Name
	}
	if req.NameAr != nil {
		level.NameAr = *req.NameAr
	}
	if req.Level != nil {
		level.Level = *req.Level
	}
	if req.Year != nil {
		level.Year = *req.Year
	}
	if req.IsActive != nil {
		level.IsActive = *req.IsActive
	}
	if req.Order != nil {
		level.Order = *req.Order
	}

	if err := s.levelRepo.Update(ctx, level); err != nil {
		return nil, err
	}
	return level, nil
}

// Delete removes a level. Users and courses referencing it keep a null level.
func (s *EducationalLevelService) Delete(ctx context.Context, id int64) error {
	err := s.levelRepo.Delete(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrEducationalLevelNotFound) {
		s.logger.Error().Err(err).Int64("id", id).Msg("Failed to delete educational level")
	}
	return err
}
