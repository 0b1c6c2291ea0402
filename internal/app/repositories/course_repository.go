package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/db"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/dberrors"
	"github.com/genius/elearning/internal/pkg/helpers"
	"github.com/genius/elearning/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db, sb: newStatementBuilder()}
}

var courseColumns = []string{
	"c.id", "c.title", "c.year", "c.short_description", "c.full_description", "c.price", "c.image",
	"c.vodafone_number", "c.month", "c.is_active", "c.educational_level_id", "c.created_at", "c.updated_at",
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select(append(append([]string{}, courseColumns...), levelColumns...)...).
		From("courses c").
		LeftJoin("educational_levels el ON el.id = c.educational_level_id")
}

func scanCourse(row rowScanner) (*models.Course, error) {
	var c models.Course
	var lvl nullableLevel
	dest := []any{
		&c.ID, &c.Title, &c.Year, &c.ShortDescription, &c.FullDescription, &c.Price, &c.Image,
		&c.VodafoneNumber, &c.Month, &c.IsActive, &c.EducationalLevelID, &c.CreatedAt, &c.UpdatedAt,
	}
	if err := row.Scan(append(dest, lvl.dest()...)...); err != nil {
		return nil, err
	}
	c.EducationalLevel = lvl.model()
	return &c, nil
}

// Create inserts a course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "year", "short_description", "full_description", "price", "image",
			"vodafone_number", "month", "is_active", "educational_level_id").
		Values(course.Title, course.Year, course.ShortDescription, course.FullDescription, course.Price, course.Image,
			course.VodafoneNumber, course.Month, course.IsActive, course.EducationalLevelID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyError(err, "") {
			return apperrors.ErrEducationalLevelNotFound
		}
		logger.Error().Err(err).Msg("Error creating course")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course with its educational level
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.selectCourses().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFound(err, apperrors.ErrCourseNotFound)
	}
	return course, nil
}

// Exists reports whether the course exists
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

// List returns a page of courses, newest first
func (r *CourseRepository) List(ctx context.Context, filter dto.CourseFilter, page helpers.PageRequest) ([]*models.Course, int64, error) {
	where := squirrel.And{}
	if filter.EducationalLevelID != nil {
		where = append(where, squirrel.Eq{"c.educational_level_id": *filter.EducationalLevelID})
	}
	if filter.IsActive != nil {
		where = append(where, squirrel.Eq{"c.is_active": *filter.IsActive})
	}

	total, err := count(ctx, r.db, r.sb.Select("COUNT(*)").From("courses c").Where(where), "courses")
	if err != nil || total == 0 {
		return []*models.Course{}, total, err
	}

	sql, args, err := r.selectCourses().Where(where).
		OrderBy("c.created_at DESC", "c.id DESC").
		Limit(uint64(page.Limit)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, 0, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0, page.Limit)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, 0, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, total, rows.Err()
}

// Update stores every mutable field of course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		Set("title", course.Title).
		Set("year", course.Year).
		Set("short_description", course.ShortDescription).
		Set("full_description", course.FullDescription).
		Set("price", course.Price).
		Set("image", course.Image).
		Set("vodafone_number", course.VodafoneNumber).
		Set("month", course.Month).
		Set("is_active", course.IsActive).
		Set("educational_level_id", course.EducationalLevelID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": course.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyError(err, "") {
			return apperrors.ErrEducationalLevelNotFound
		}
		return notFound(err, apperrors.ErrCourseNotFound)
	}
	return nil
}

// Delete removes a course together with its lessons, exams, assignments,
// their questions and submissions, and its subscriptions.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var locked int64
		if err := tx.QueryRow(ctx, `SELECT id FROM courses WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
			return notFound(err, apperrors.ErrCourseNotFound)
		}

		if _, err := tx.Exec(ctx, `
			DELETE FROM assessments
			WHERE course_id = $1 OR lesson_id IN (SELECT id FROM lessons WHERE course_id = $1)`, id); err != nil {
			logger.Error().Err(err).Int64("courseId", id).Msg("Error deleting course assessments")
			return fmt.Errorf("error deleting course assessments: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id); err != nil {
			logger.Error().Err(err).Int64("courseId", id).Msg("Error deleting course")
			return fmt.Errorf("error deleting course: %w", err)
		}
		return nil
	})
}
