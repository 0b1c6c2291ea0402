package models

import "time"

// Course is a purchasable unit of lessons, exams and assignments
type Course struct {
	ID                 int64     `json:"id" db:"id" example:"1"`
	Title              string    `json:"title" db:"title" example:"Physics - October"`
	Year               string    `json:"year" db:"year" example:"2025"`
	ShortDescription   string    `json:"shortDescription" db:"short_description"`
	FullDescription    string    `json:"fullDescription" db:"full_description"`
	Price              float64   `json:"price" db:"price" example:"150"`
	Image              string    `json:"image,omitempty" db:"image"`
	VodafoneNumber     string    `json:"vodafoneNumber,omitempty" db:"vodafone_number" example:"01012345678"`
	Month              int       `json:"month" db:"month" example:"10"`
	IsActive           bool      `json:"isActive" db:"is_active" example:"true"`
	EducationalLevelID *int64    `json:"educationalLevelId,omitempty" db:"educational_level_id"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	EducationalLevel *EducationalLevel `json:"educationalLevel,omitempty"`
}
