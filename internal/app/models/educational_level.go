package models

import "time"

// Stage is the school stage an educational level belongs to
type Stage string

const (
	StagePrimary   Stage = "primary"
	StagePrep      Stage = "prep"
	StageSecondary Stage = "secondary"
)

// IsValid reports whether s is a known stage
func (s Stage) IsValid() bool {
	return s == StagePrimary || s == StagePrep || s == StageSecondary
}

// EducationalLevel is a school grade students register under and courses target
type EducationalLevel struct {
	ID        int64     `json:"id" db:"id" example:"6"`
	Name      string    `json:"name" db:"name" example:"Third Secondary"`
	NameAr    string    `json:"nameAr" db:"name_ar" example:"تالته ثانوي"`
	Level     Stage     `json:"level" db:"level" example:"secondary"`
	Year      int       `json:"year" db:"year" example:"3"`
	IsActive  bool      `json:"isActive" db:"is_active" example:"true"`
	Order     int       `json:"order" db:"sort_order" example:"6"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
