package models

import (
	"strings"
	"time"
)

// AssessmentKind distinguishes exams from assignments; both share one table
type AssessmentKind string

const (
	KindExam       AssessmentKind = "exam"
	KindAssignment AssessmentKind = "assignment"
)

// OnModel returns the API name of the kind ("Exam" or "Assignment")
func (k AssessmentKind) OnModel() string {
	if k == KindAssignment {
		return "Assignment"
	}
	return "Exam"
}

// KindFromOnModel parses an onModel value. Anything but "Assignment" is an exam.
func KindFromOnModel(onModel string) AssessmentKind {
	if strings.EqualFold(strings.TrimSpace(onModel), "Assignment") {
		return KindAssignment
	}
	return KindExam
}

// AssessmentType says whether an assessment belongs to a course or is general
type AssessmentType string

const (
	AssessmentTypeCourse  AssessmentType = "course"
	AssessmentTypeGeneral AssessmentType = "general"
)

// IsValid reports whether t is course or general
func (t AssessmentType) IsValid() bool {
	return t == AssessmentTypeCourse || t == AssessmentTypeGeneral
}

// Assessment is an exam or an assignment: a set of auto-graded questions.
// TotalMarks is derived from the questions and never set by clients.
type Assessment struct {
	ID                  int64          `json:"id" db:"id" example:"1"`
	Kind                AssessmentKind `json:"-" db:"kind"`
	CourseID            *int64         `json:"courseId,omitempty" db:"course_id" example:"1"`
	LessonID            *int64         `json:"lessonId,omitempty" db:"lesson_id"`
	Title               string         `json:"title" db:"title" example:"Chapter 1 quiz"`
	Date                *time.Time     `json:"date,omitempty" db:"date"`
	TimeLimitMin        int            `json:"timeLimitMin" db:"time_limit_min" example:"30"`
	TotalMarks          int            `json:"totalMarks" db:"total_marks" example:"20"`
	Type                AssessmentType `json:"type" db:"type" example:"course"`
	IsActive            bool           `json:"isActive" db:"is_active" example:"true"`
	MandatoryAttendance bool           `json:"mandatoryAttendance" db:"mandatory_attendance" example:"false"`
	CreatedAt           time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time      `json:"updatedAt" db:"updated_at"`
}
