package models

import "time"

// QuestionType is the presentation of a question's content
type QuestionType string

const (
	QuestionTypeText  QuestionType = "text"
	QuestionTypeImage QuestionType = "image"
)

// QuestionOption is one multiple-choice option
type QuestionOption struct {
	ID   string `json:"id" example:"a"`
	Text string `json:"text" example:"9.8 m/s²"`
}

// Question belongs to one assessment. Options are stored as a JSONB document.
type Question struct {
	ID          int64            `json:"id" db:"id" example:"1"`
	ExamID      int64            `json:"examId" db:"assessment_id" example:"1"`
	OnModel     string           `json:"onModel" example:"Exam"`
	Type        QuestionType     `json:"type" db:"type" example:"text"`
	Content     string           `json:"content" db:"content"`
	Options     []QuestionOption `json:"options" db:"options"`
	Correct     string           `json:"correct,omitempty" db:"correct" example:"a"`
	Explanation string           `json:"explanation,omitempty" db:"explanation"`
	Order       int              `json:"order" db:"sort_order" example:"1"`
	Marks       int              `json:"marks" db:"marks" example:"1"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time        `json:"updatedAt" db:"updated_at"`
}

// HasOption reports whether id names one of the question's options
func (q *Question) HasOption(id string) bool {
	for _, opt := range q.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}
