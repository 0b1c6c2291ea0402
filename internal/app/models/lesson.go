package models

import "time"

// Lesson is a video-backed unit within a course
type Lesson struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	CourseID    int64     `json:"courseId" db:"course_id" example:"1"`
	Title       string    `json:"title" db:"title" example:"Newton's laws"`
	Duration    int       `json:"duration" db:"duration" example:"45"` // minutes
	IsLocked    bool      `json:"isLocked" db:"is_locked" example:"false"`
	VideoURL    string    `json:"videoUrl" db:"video_url" example:"https://videos.example.com/1"`
	Description string    `json:"description,omitempty" db:"description"`
	Order       int       `json:"order" db:"sort_order" example:"1"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
