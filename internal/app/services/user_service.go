package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/auth"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// UserService handles profile and account administration
type UserService struct {
	userRepo  UserStore
	levelRepo EducationalLevelStore
	userCache UserCacheEvicter
	logger    zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserStore, levelRepo EducationalLevelStore, userCache UserCacheEvicter, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo:  userRepo,
		levelRepo: levelRepo,
		userCache: userCache,
		logger:    logger,
	}
}

func (s *UserService) evict(ctx context.Context, userID int64) {
	if s.userCache != nil {
		s.userCache.Delete(ctx, userID)
	}
}

// GetProfile returns the user's profile
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile changes name, guardian phone and educational level
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.GuardianPhone != nil {
		user.GuardianPhone = strings.TrimSpace(*req.GuardianPhone)
	}
	if req.EducationalLevel != nil {
		if err := checkLevel(ctx, s.levelRepo, req.EducationalLevel); err != nil {
			return nil, err
		}
		user.EducationalLevelID = req.EducationalLevel
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	s.evict(ctx, userID)

	return s.userRepo.GetByID(ctx, userID)
}

// ChangePassword replaces the password after checking the current one
func (s *UserService) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	if len(req.NewPassword) < auth.MinPasswordLength {
		return apperrors.NewValidationError("New password must be at least 6 characters")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.Password, req.CurrentPassword) {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, "Current password is incorrect")
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}
	s.evict(ctx, userID)

	s.logger.Info().Int64("userId", userID).Msg("Password changed")
	return nil
}

// ListUsers returns a filtered page of users for staff
func (s *UserService) ListUsers(ctx context.Context, filter dto.UserFilter, page helpers.PageRequest) ([]*models.User, *dto.PaginationInfo, error) {
	if filter.Role != "" && !models.Role(filter.Role).IsValid() {
		return nil, nil, apperrors.NewValidationError("Invalid role filter")
	}
	users, total, err := s.userRepo.List(ctx, filter, page)
	if err != nil {
		return nil, nil, err
	}
	return users, helpers.NewPaginationInfo(total, page), nil
}

// UpdateRole sets a user's role and permissions
func (s *UserService) UpdateRole(ctx context.Context, userID int64, req *dto.UpdateUserRoleRequest) (*models.User, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("Invalid role")
	}
	permissions := req.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	if err := s.userRepo.UpdateRole(ctx, userID, req.Role, permissions); err != nil {
		return nil, err
	}
	s.evict(ctx, userID)

	s.logger.Info().Int64("userId", userID).Str("role", string(req.Role)).Msg("User role updated")
	return s.userRepo.GetByID(ctx, userID)
}
