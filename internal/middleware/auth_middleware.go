package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/auth"
	"github.com/genius/elearning/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "userID"
	ContextRole   = "role"
	ContextUser   = "user"
)

// UserLoader resolves the user behind a token
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// UserSnapshotCache caches authenticated users between requests
type UserSnapshotCache interface {
	Get(ctx context.Context, userID int64) (*models.User, bool)
	Set(ctx context.Context, user *models.User)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      UserLoader
	cache      UserSnapshotCache
}

// NewAuthMiddleware creates a new AuthMiddleware. cache may be nil.
func NewAuthMiddleware(jwtService *auth.JWTService, users UserLoader, cache UserSnapshotCache) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
		cache:      cache,
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, details string) {
	errorDetail := dto.NewErrorDetail(code, "Not authorized").WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseForStatus(http.StatusUnauthorized, errorDetail))
}

// tokenFromRequest reads the bearer token from the Authorization header or,
// for WebSocket clients that cannot set headers, the token query parameter.
func tokenFromRequest(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		return auth.ExtractBearerToken(strings.Trim(header, "\"'"))
	}
	if token := c.Query("token"); token != "" {
		return token, nil
	}
	return "", apperrors.ErrTokenNotFound
}

// authenticate resolves the request's user, or returns why it could not
func (m *AuthMiddleware) authenticate(c *gin.Context) (*models.User, dto.ErrorCode, error) {
	tokenString, err := tokenFromRequest(c)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return nil, dto.ErrorCodeTokenNotFound, err
		}
		return nil, dto.ErrorCodeInvalidToken, err
	}

	claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, dto.ErrorCodeExpiredToken, err
		}
		return nil, dto.ErrorCodeInvalidToken, err
	}

	ctx := c.Request.Context()
	if m.cache != nil {
		if user, ok := m.cache.Get(ctx, claims.UserID); ok {
			return user, "", nil
		}
	}

	user, err := m.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Error().Err(err).Int64("userId", claims.UserID).Msg("Failed to load authenticated user")
		}
		return nil, dto.ErrorCodeUnauthorized, err
	}
	if m.cache != nil {
		m.cache.Set(ctx, user)
	}
	return user, "", nil
}

func setUser(c *gin.Context, user *models.User) {
	c.Set(ContextUserID, user.ID)
	c.Set(ContextRole, user.Role)
	c.Set(ContextUser, user)
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, code, err := m.authenticate(c)
		if err != nil {
			switch code {
			case dto.ErrorCodeTokenNotFound:
				abortUnauthorized(c, code, "Not authorized, no token")
			case dto.ErrorCodeExpiredToken:
				abortUnauthorized(c, code, "Token has expired")
			case dto.ErrorCodeUnauthorized:
				abortUnauthorized(c, code, "User not found")
			default:
				abortUnauthorized(c, code, "Not authorized, token failed")
			}
			return
		}

		setUser(c, user)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present and lets anonymous requests through
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, _, err := m.authenticate(c); err == nil {
			setUser(c, user)
		}
		c.Next()
	}
}

// RoleRequired middleware to check if user has one of the required roles
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := CurrentRole(c)
		if !exists {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "User role not found")
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
			WithDetails("You don't have sufficient permissions for this operation")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponseForStatus(http.StatusForbidden, errorDetail))
	}
}

// CurrentUserID returns the authenticated user's ID
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// CurrentRole returns the authenticated user's role
func CurrentRole(c *gin.Context) (models.Role, bool) {
	v, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}

// CurrentUser returns the authenticated user, or nil for anonymous requests
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(ContextUser)
	if !exists {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// IsStaff reports whether the caller is an admin or teacher
func IsStaff(c *gin.Context) bool {
	role, ok := CurrentRole(c)
	return ok && role.IsStaff()
}
