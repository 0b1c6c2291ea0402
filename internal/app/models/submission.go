package models

import "time"

// Answer is a user's chosen option for one question
type Answer struct {
	QuestionID     int64  `json:"questionId" example:"1"`
	SelectedOption string `json:"selectedOption" example:"a"`
}

// Submission is a graded record of a user's answers to an exam or assignment
type Submission struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	UserID      int64      `json:"userId" db:"user_id" example:"7"`
	ExamID      int64      `json:"examId" db:"assessment_id" example:"1"`
	OnModel     string     `json:"onModel" example:"Exam"`
	Answers     []Answer   `json:"answers" db:"answers"`
	Score       int        `json:"score" db:"score" example:"15"`
	TotalMarks  int        `json:"totalMarks" db:"total_marks" example:"20"`
	SubmittedAt time.Time  `json:"submittedAt" db:"submitted_at"`
	IsGraded    bool       `json:"isGraded" db:"is_graded" example:"true"`
	GradedAt    *time.Time `json:"gradedAt,omitempty" db:"graded_at"`
	GradedBy    *int64     `json:"gradedBy,omitempty" db:"graded_by"`

	User *UserSummary `json:"user,omitempty"`
}
