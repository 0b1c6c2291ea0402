package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/dberrors"
	"github.com/genius/elearning/internal/pkg/helpers"
	"github.com/genius/elearning/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LessonRepository handles lesson database operations
type LessonRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{db: db, sb: newStatementBuilder()}
}

var lessonColumns = []string{
	"id", "course_id", "title", "duration", "is_locked", "video_url", "description", "sort_order", "created_at", "updated_at",
}

func scanLesson(row rowScanner) (*models.Lesson, error) {
	var l models.Lesson
	err := row.Scan(&l.ID, &l.CourseID, &l.Title, &l.Duration, &l.IsLocked, &l.VideoURL, &l.Description, &l.Order, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a lesson
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	sql, args, err := r.sb.Insert("lessons").
		Columns("course_id", "title", "duration", "is_locked", "video_url", "description", "sort_order").
		Values(lesson.CourseID, lesson.Title, lesson.Duration, lesson.IsLocked, lesson.VideoURL, lesson.Description, lesson.Order).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create lesson query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&lesson.ID, &lesson.CreatedAt, &lesson.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyError(err, "") {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error creating lesson")
		return fmt.Errorf("error creating lesson: %w", err)
	}
	return nil
}

// GetByID retrieves a lesson
func (r *LessonRepository) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	sql, args, err := r.sb.Select(lessonColumns...).From("lessons").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get lesson query: %w", err)
	}

	lesson, err := scanLesson(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFound(err, apperrors.ErrLessonNotFound)
	}
	return lesson, nil
}

// ListByCourse returns a page of a course's lessons in order
func (r *LessonRepository) ListByCourse(ctx context.Context, courseID int64, page helpers.PageRequest) ([]*models.Lesson, int64, error) {
	where := squirrel.Eq{"course_id": courseID}

	total, err := count(ctx, r.db, r.sb.Select("COUNT(*)").From("lessons").Where(where), "lessons")
	if err != nil || total == 0 {
		return []*models.Lesson{}, total, err
	}

	sql, args, err := r.sb.Select(lessonColumns...).From("lessons").Where(where).
		OrderBy("sort_order ASC", "id ASC").
		Limit(uint64(page.Limit)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list lessons query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseId", courseID).Msg("Error executing list lessons query")
		return nil, 0, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := make([]*models.Lesson, 0, page.Limit)
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan lesson row: %w", err)
		}
		lessons = append(lessons, l)
	}
	return lessons, total, rows.Err()
}

// Update stores every mutable field of lesson
func (r *LessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	sql, args, err := r.sb.Update("lessons").
		Set("title", lesson.Title).
		Set("duration", lesson.Duration).
		Set("is_locked", lesson.IsLocked).
		Set("video_url", lesson.VideoURL).
		Set("description", lesson.Description).
		Set("sort_order", lesson.Order).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": lesson.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update lesson query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&lesson.UpdatedAt); err != nil {
		return notFound(err, apperrors.ErrLessonNotFound)
	}
	return nil
}

// Delete removes a lesson and the assessments attached to it
func (r *LessonRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting lesson")
		return fmt.Errorf("error deleting lesson: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLessonNotFound
	}
	return nil
}
