package dto

import "github.com/genius/elearning/internal/app/models"

// RegisterRequest represents a student registration
type RegisterRequest struct {
	Name             string        `json:"name" binding:"required,min=2,max=100" example:"Ahmed Ali"`
	Phone            string        `json:"phone" binding:"required,phone" example:"01012345678"`
	GuardianPhone    string        `json:"guardianPhone" binding:"required,phone" example:"01198765432"`
	EducationalLevel *int64        `json:"educationalLevel" binding:"omitempty,gt=0" example:"6"`
	Gender           models.Gender `json:"gender" binding:"required,oneof=male female" example:"male"`
	Year             string        `json:"year,omitempty" example:"2025"`
	Password         string        `json:"password" binding:"required,min=6,max=72" example:"secret1"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required" example:"01012345678"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType" example:"Bearer"`
	ExpiresIn int          `json:"expiresIn" example:"604800"`
	User      *models.User `json:"user"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	Name             *string `json:"name" binding:"omitempty,min=2,max=100"`
	GuardianPhone    *string `json:"guardianPhone" binding:"omitempty,phone"`
	EducationalLevel *int64  `json:"educationalLevel" binding:"omitempty,gt=0"`
}

// ChangePasswordRequest changes the caller's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=72"`
}

// UpdateUserRoleRequest is used by admins to change a user's role
type UpdateUserRoleRequest struct {
	Role        models.Role `json:"role" binding:"required,oneof=student teacher admin assistant" example:"assistant"`
	Permissions []string    `json:"permissions"`
}

// UserFilter narrows the admin user listing
type UserFilter struct {
	Role   string
	Search string
}
