package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository             *UserRepository
	EducationalLevelRepository *EducationalLevelRepository
	CourseRepository           *CourseRepository
	LessonRepository           *LessonRepository
	AssessmentRepository       *AssessmentRepository
	QuestionRepository         *QuestionRepository
	SubmissionRepository       *SubmissionRepository
	SubscriptionRepository     *SubscriptionRepository
	NotificationRepository     *NotificationRepository
	NoteRepository             *NoteRepository
	FileRepository             *FileRepository
	StatsRepository            *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:             NewUserRepository(db),
		EducationalLevelRepository: NewEducationalLevelRepository(db),
		CourseRepository:           NewCourseRepository(db),
		LessonRepository:           NewLessonRepository(db),
		AssessmentRepository:       NewAssessmentRepository(db),
		QuestionRepository:         NewQuestionRepository(db),
		SubmissionRepository:       NewSubmissionRepository(db),
		SubscriptionRepository:     NewSubscriptionRepository(db),
		NotificationRepository:     NewNotificationRepository(db),
		NoteRepository:             NewNoteRepository(db),
		FileRepository:             NewFileRepository(db),
		StatsRepository:            NewStatsRepository(db),
	}
}
