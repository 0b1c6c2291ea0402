package services

import (
	"context"
	"time"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/helpers"
	"github.com/genius/elearning/internal/pkg/websocket"
)

// Persistence contracts consumed by the services. The repositories package
// satisfies them against PostgreSQL; tests use in-memory fakes.

// UserStore persists users
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error
	UpdateRole(ctx context.Context, userID int64, role models.Role, permissions []string) error
	List(ctx context.Context, filter dto.UserFilter, page helpers.PageRequest) ([]*models.User, int64, error)
	IDsByRole(ctx context.Context, role models.Role) ([]int64, error)
}

// EducationalLevelStore persists educational levels
type EducationalLevelStore interface {
	Create(ctx context.Context, level *models.EducationalLevel) error
	GetByID(ctx context.Context, id int64) (*models.EducationalLevel, error)
	List(ctx context.Context, filter dto.EducationalLevelFilter, page helpers.PageRequest) ([]*models.EducationalLevel, int64, error)
	Update(ctx context.Context, level *models.EducationalLevel) error
	Delete(ctx context.Context, id int64) error
}

// CourseStore persists courses
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter dto.CourseFilter, page helpers.PageRequest) ([]*models.Course, int64, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// LessonStore persists lessons
type LessonStore interface {
	Create(ctx context.Context, lesson *models.Lesson) error
	GetByID(ctx context.Context, id int64) (*models.Lesson, error)
	ListByCourse(ctx context.Context, courseID int64, page helpers.PageRequest) ([]*models.Lesson, int64, error)
	Update(ctx context.Context, lesson *models.Lesson) error
	Delete(ctx context.Context, id int64) error
}

// AssessmentStore persists exams and assignments
type AssessmentStore interface {
	Create(ctx context.Context, a *models.Assessment) error
	GetByID(ctx context.Context, kind models.AssessmentKind, id int64) (*models.Assessment, error)
	List(ctx context.Context, kind models.AssessmentKind, filter dto.AssessmentFilter, page helpers.PageRequest) ([]*models.Assessment, int64, error)
	Update(ctx context.Context, a *models.Assessment) error
	Delete(ctx context.Context, kind models.AssessmentKind, id int64) error
}

// QuestionStore persists questions. Every write returns the owning assessment's recomputed total marks.
type QuestionStore interface {
	Create(ctx context.Context, question *models.Question) (int, error)
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	ListByAssessment(ctx context.Context, kind models.AssessmentKind, assessmentID int64) ([]*models.Question, error)
	Update(ctx context.Context, question *models.Question) (int, error)
	Delete(ctx context.Context, question *models.Question) (int, error)
}

// SubmissionStore persists graded submissions
type SubmissionStore interface {
	Create(ctx context.Context, s *models.Submission) error
	LatestByUser(ctx context.Context, kind models.AssessmentKind, assessmentID, userID int64) (*models.Submission, error)
	ListByAssessment(ctx context.Context, kind models.AssessmentKind, assessmentID int64, page helpers.PageRequest) ([]*models.Submission, int64, error)
}

// SubscriptionStore persists subscriptions
type SubscriptionStore interface {
	Create(ctx context.Context, s *models.Subscription) error
	Exists(ctx context.Context, userID, courseID int64) (bool, error)
	HasActive(ctx context.Context, userID, courseID int64, at time.Time) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Subscription, error)
	List(ctx context.Context, filter dto.SubscriptionFilter, page helpers.PageRequest) ([]*models.Subscription, int64, error)
	UpdateStatus(ctx context.Context, id int64, status models.SubscriptionStatus, expiresAt *time.Time) error
}

// NotificationStore persists notifications
type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	CreateMany(ctx context.Context, items []*models.Notification) error
	ListByUser(ctx context.Context, userID int64, filter dto.NotificationFilter, page helpers.PageRequest) ([]*models.Notification, int64, error)
	MarkRead(ctx context.Context, id, userID int64) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

// NoteStore persists notes and note orders
type NoteStore interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	List(ctx context.Context, filter dto.NoteFilter, page helpers.PageRequest) ([]*models.Note, int64, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id int64) error
	CreateOrder(ctx context.Context, o *models.NoteOrder) error
	GetOrderByID(ctx context.Context, id int64) (*models.NoteOrder, error)
	ListOrders(ctx context.Context, filter dto.NoteOrderFilter, page helpers.PageRequest) ([]*models.NoteOrder, int64, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.NoteOrderStatus) error
}

// FileStore records stored uploads
type FileStore interface {
	Create(ctx context.Context, file *models.File) (int64, error)
}

// StatsStore aggregates dashboard counters
type StatsStore interface {
	Collect(ctx context.Context) (*dto.StatsResponse, error)
}

// UserCacheEvicter drops cached user snapshots after a change
type UserCacheEvicter interface {
	Delete(ctx context.Context, userID int64)
}

// EventPublisher pushes real-time events to a user's open connections
type EventPublisher interface {
	PushToUsers(eventType string, msgs []websocket.Message) int
}
