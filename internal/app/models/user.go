package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID                 int64             `json:"id" db:"id" example:"1"`
	Name               string            `json:"name" db:"name" example:"Ahmed Ali"`
	Phone              string            `json:"phone" db:"phone" example:"01012345678"`
	GuardianPhone      string            `json:"guardianPhone" db:"guardian_phone" example:"01198765432"`
	EducationalLevelID *int64            `json:"educationalLevelId,omitempty" db:"educational_level_id" example:"6"`
	Gender             Gender            `json:"gender" db:"gender" example:"male"`
	Year               string            `json:"year,omitempty" db:"year" example:"2025"`
	Password           string            `json:"-" db:"password"`
	Role               Role              `json:"role" db:"role" example:"student"`
	Permissions        []string          `json:"permissions" db:"permissions"`
	CreatedAt          time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time         `json:"updatedAt" db:"updated_at"`
	EducationalLevel   *EducationalLevel `json:"educationalLevel,omitempty"` // Relation, no db tag
}

// UserSummary is the slim user projection embedded in admin listings
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
