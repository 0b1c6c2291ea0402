package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/auth"
)

// AuthService handles registration, login and session lookups
type AuthService struct {
	userRepo   UserStore
	levelRepo  EducationalLevelStore
	jwtService *auth.JWTService
	userCache  UserCacheEvicter
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo UserStore,
	levelRepo EducationalLevelStore,
	jwtService *auth.JWTService,
	userCache UserCacheEvicter,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		levelRepo:  levelRepo,
		jwtService: jwtService,
		userCache:  userCache,
		logger:     logger,
	}
}

// checkLevel verifies that an optional educational level reference exists
func checkLevel(ctx context.Context, levels EducationalLevelStore, id *int64) error {
	if id == nil {
		return nil
	}
	if _, err := levels.GetByID(ctx, *id); err != nil {
		if errors.Is(err, apperrors.ErrEducationalLevelNotFound) {
			return apperrors.NewBadRequestError("Educational level not found")
		}
		return err
	}
	return nil
}

// Register creates a student account and signs a token for it
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(req.Password) < auth.MinPasswordLength {
		return nil, apperrors.NewValidationError("Password must be at least 6 characters")
	}
	if err := checkLevel(ctx, s.levelRepo, req.EducationalLevel); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if errors.Is(err, apperrors.ErrValidationFailed) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:               strings.TrimSpace(req.Name),
		Phone:              strings.TrimSpace(req.Phone),
		GuardianPhone:      strings.TrimSpace(req.GuardianPhone),
		EducationalLevelID: req.EducationalLevel,
		Gender:             req.Gender,
		Year:               req.Year,
		Password:           hashed,
		Role:               models.RoleStudent,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEducationalLevelNotFound) {
			return nil, apperrors.NewBadRequestError("Educational level not found")
		}
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("phone", user.Phone).Msg("User registered")

	// Reload so the response embeds the educational level
	created, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.issue(created)
}

// Login verifies phone and password
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByPhone(ctx, strings.TrimSpace(req.Phone))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Warn().Int64("userId", user.ID).Msg("Login with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		User:      user,
	}, nil
}

// Me returns the authenticated user with its educational level
func (s *AuthService) Me(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Logout drops the cached user snapshot. Tokens stay valid until they expire.
func (s *AuthService) Logout(ctx context.Context, userID int64) {
	if s.userCache != nil {
		s.userCache.Delete(ctx, userID)
	}
	s.logger.Info().Int64("userId", userID).Msg("User logged out")
}
