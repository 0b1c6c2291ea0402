package dto

import "github.com/genius/elearning/internal/app/models"

// EducationalLevelRequest creates an educational level
type EducationalLevelRequest struct {
	Name     string       `json:"name" binding:"required" example:"Third Secondary"`
	NameAr   string       `json:"nameAr" binding:"required" example:"تالته ثانوي"`
	Level    models.Stage `json:"level" binding:"required,oneof=primary prep secondary" example:"secondary"`
	Year     int          `json:"year" binding:"required,min=1,max=3" example:"3"`
	IsActive *bool        `json:"isActive"`
	Order    int          `json:"order" binding:"required,min=1" example:"6"`
}

// UpdateEducationalLevelRequest partially updates an educational level
type UpdateEducationalLevelRequest struct {
	Name     *string       `json:"name" binding:"omitempty,min=1"`
	NameAr   *string       `json:"nameAr" binding:"omitempty,min=1"`
	Level    *models.Stage `json:"level" binding:"omitempty,oneof=primary prep secondary"`
	Year     *int          `json:"year" binding:"omitempty,min=1,max=3"`
	IsActive *bool         `json:"isActive"`
	Order    *int          `json:"order" binding:"omitempty,min=1"`
}

// EducationalLevelFilter narrows the level listing
type EducationalLevelFilter struct {
	Level    string
	IsActive *bool
}

// CourseRequest creates a course
type CourseRequest struct {
	Title              string  `json:"title" binding:"required" example:"Physics - October"`
	Year               string  `json:"year" binding:"required" example:"2025"`
	ShortDescription   string  `json:"shortDescription" binding:"required"`
	FullDescription    string  `json:"fullDescription" binding:"required"`
	Price              float64 `json:"price" binding:"min=0" example:"150"`
	Image              string  `json:"image"`
	VodafoneNumber     string  `json:"vodafoneNumber" example:"01012345678"`
	Month              int     `json:"month" binding:"required,min=1,max=12" example:"10"`
	IsActive           *bool   `json:"isActive"`
	EducationalLevelID *int64  `json:"educationalLevel" binding:"omitempty,gt=0" example:"6"`
}

// UpdateCourseRequest partially updates a course
type UpdateCourseRequest struct {
	Title              *string  `json:"title" binding:"omitempty,min=1"`
	Year               *string  `json:"year" binding:"omitempty,min=1"`
	ShortDescription   *string  `json:"shortDescription" binding:"omitempty,min=1"`
	FullDescription    *string  `json:"fullDescription" binding:"omitempty,min=1"`
	Price              *float64 `json:"price" binding:"omitempty,min=0"`
	Image              *string  `json:"image"`
	VodafoneNumber     *string  `json:"vodafoneNumber"`
	Month              *int     `json:"month" binding:"omitempty,min=1,max=12"`
	IsActive           *bool    `json:"isActive"`
	EducationalLevelID *int64   `json:"educationalLevel" binding:"omitempty,gt=0"`
}

// CourseFilter narrows the course listing
type CourseFilter struct {
	EducationalLevelID *int64
	IsActive           *bool
}

// LessonRequest creates a lesson
type LessonRequest struct {
	CourseID    int64  `json:"courseId" binding:"required,gt=0" example:"1"`
	Title       string `json:"title" binding:"required"`
	Duration    int    `json:"duration" binding:"min=0" example:"45"`
	IsLocked    bool   `json:"isLocked"`
	VideoURL    string `json:"videoUrl" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order" binding:"required" example:"1"`
}

// UpdateLessonRequest partially updates a lesson
type UpdateLessonRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Duration    *int    `json:"duration" binding:"omitempty,min=0"`
	IsLocked    *bool   `json:"isLocked"`
	VideoURL    *string `json:"videoUrl" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}
