package dto

import (
	"time"

	"github.com/genius/elearning/internal/app/models"
)

// AssessmentRequest creates an exam or assignment. TotalMarks is derived from questions.
type AssessmentRequest struct {
	CourseID            *int64                `json:"courseId" binding:"omitempty,gt=0" example:"1"`
	LessonID            *int64                `json:"lessonId" binding:"omitempty,gt=0"`
	Title               string                `json:"title" binding:"required" example:"Chapter 1 quiz"`
	Date                *time.Time            `json:"date"`
	TimeLimitMin        int                   `json:"timeLimitMin" binding:"min=0" example:"30"`
	Type                models.AssessmentType `json:"type" binding:"required,oneof=course general" example:"course"`
	IsActive            *bool                 `json:"isActive"`
	MandatoryAttendance bool                  `json:"mandatoryAttendance"`
}

// UpdateAssessmentRequest partially updates an exam or assignment
type UpdateAssessmentRequest struct {
	CourseID            *int64                 `json:"courseId" binding:"omitempty,gt=0"`
	LessonID            *int64                 `json:"lessonId" binding:"omitempty,gt=0"`
	Title               *string                `json:"title" binding:"omitempty,min=1"`
	Date                *time.Time             `json:"date"`
	TimeLimitMin        *int                   `json:"timeLimitMin" binding:"omitempty,min=0"`
	Type                *models.AssessmentType `json:"type" binding:"omitempty,oneof=course general"`
	IsActive            *bool                  `json:"isActive"`
	MandatoryAttendance *bool                  `json:"mandatoryAttendance"`
}

// AssessmentFilter narrows exam and assignment listings
type AssessmentFilter struct {
	CourseID *int64
	LessonID *int64
	Type     string
	IsActive *bool
}

// QuestionRequest creates a question on an exam or assignment
type QuestionRequest struct {
	ExamID      int64                   `json:"examId" binding:"required,gt=0" example:"1"`
	OnModel     string                  `json:"onModel" binding:"omitempty,oneof=Exam Assignment" example:"Exam"`
	Type        models.QuestionType     `json:"type" binding:"omitempty,oneof=text image" example:"text"`
	Content     string                  `json:"content" binding:"required"`
	Options     []models.QuestionOption `json:"options" binding:"required,min=2,dive"`
	Correct     string                  `json:"correct" binding:"required" example:"a"`
	Explanation string                  `json:"explanation"`
	Order       int                     `json:"order"`
	Marks       *int                    `json:"marks" binding:"omitempty,min=0" example:"1"`
}

// UpdateQuestionRequest partially updates a question
type UpdateQuestionRequest struct {
	Type        *models.QuestionType    `json:"type" binding:"omitempty,oneof=text image"`
	Content     *string                 `json:"content" binding:"omitempty,min=1"`
	Options     []models.QuestionOption `json:"options" binding:"omitempty,min=2,dive"`
	Correct     *string                 `json:"correct" binding:"omitempty,min=1"`
	Explanation *string                 `json:"explanation"`
	Order       *int                    `json:"order"`
	Marks       *int                    `json:"marks" binding:"omitempty,min=0"`
}

// SubmitAnswersRequest carries a user's answers. Answers must be present, but may be empty.
type SubmitAnswersRequest struct {
	Answers []models.Answer `json:"answers" binding:"required"`
}

// SubmissionResult is returned after grading
type SubmissionResult struct {
	Submission *models.Submission `json:"submission"`
	Score      int                `json:"score" example:"15"`
	TotalMarks int                `json:"totalMarks" example:"20"`
}
