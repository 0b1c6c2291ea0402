package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/dberrors"
	"github.com/genius/elearning/internal/pkg/helpers"
	"github.com/genius/elearning/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AssessmentRepository handles exams and assignments, which share the assessments table
type AssessmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssessmentRepository creates a new AssessmentRepository
func NewAssessmentRepository(db *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{db: db, sb: newStatementBuilder()}
}

// NotFoundError returns the not-found sentinel for kind
func NotFoundError(kind models.AssessmentKind) error {
	if kind == models.KindAssignment {
		return apperrors.ErrAssignmentNotFound
	}
	return apperrors.ErrExamNotFound
}

var assessmentColumns = []string{
	"id", "kind", "course_id", "lesson_id", "title", "date", "time_limit_min", "total_marks",
	"type", "is_active", "mandatory_attendance", "created_at", "updated_at",
}

func scanAssessment(row rowScanner) (*models.Assessment, error) {
	var a models.Assessment
	err := row.Scan(&a.ID, &a.Kind, &a.CourseID, &a.LessonID, &a.Title, &a.Date, &a.TimeLimitMin, &a.TotalMarks,
		&a.Type, &a.IsActive, &a.MandatoryAttendance, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func assessmentReferenceError(err error) error {
	if dberrors.IsForeignKeyError(err, "assessments_lesson_id_fkey") {
		return apperrors.ErrLessonNotFound
	}
	if dberrors.IsForeignKeyError(err, "") {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Create inserts an exam or assignment. Total marks start at zero.
func (r *AssessmentRepository) Create(ctx context.Context, a *models.Assessment) error {
	sql, args, err := r.sb.Insert("assessments").
		Columns("kind", "course_id", "lesson_id", "title", "date", "time_limit_min", "total_marks",
			"type", "is_active", "mandatory_attendance").
		Values(a.Kind, a.CourseID, a.LessonID, a.Title, a.Date, a.TimeLimitMin, 0,
			a.Type, a.IsActive, a.MandatoryAttendance).
		Suffix("RETURNING id, total_marks, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create %s query: %w", a.Kind, err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.TotalMarks, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if refErr := assessmentReferenceError(err); refErr != nil {
			return refErr
		}
		logger.Error().Err(err).Str("kind", string(a.Kind)).Msg("Error creating assessment")
		return fmt.Errorf("error creating %s: %w", a.Kind, err)
	}
	return nil
}

// GetByID retrieves an exam or assignment of the given kind
func (r *AssessmentRepository) GetByID(ctx context.Context, kind models.AssessmentKind, id int64) (*models.Assessment, error) {
	sql, args, err := r.sb.Select(assessmentColumns...).From("assessments").
		Where(squirrel.Eq{"id": id, "kind": kind}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get %s query: %w", kind, err)
	}

	a, err := scanAssessment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFound(err, NotFoundError(kind))
	}
	return a, nil
}

// List returns a page of exams or assignments, most recent date first
func (r *AssessmentRepository) List(ctx context.Context, kind models.AssessmentKind, filter dto.AssessmentFilter, page helpers.PageRequest) ([]*models.Assessment, int64, error) {
	where := squirrel.And{squirrel.Eq{"kind": kind}}
	if filter.CourseID != nil {
		where = append(where, squirrel.Eq{"course_id": *filter.CourseID})
	}
	if filter.LessonID != nil {
		where = append(where, squirrel.Eq{"lesson_id": *filter.LessonID})
	}
	if filter.Type != "" {
		where = append(where, squirrel.Eq{"type": filter.Type})
	}
	if filter.IsActive != nil {
		where = append(where, squirrel.Eq{"is_active": *filter.IsActive})
	}

	total, err := count(ctx, r.db, r.sb.Select("COUNT(*)").From("assessments").Where(where), string(kind)+"s")
	if err != nil || total == 0 {
		return []*models.Assessment{}, total, err
	}

	sql, args, err := r.sb.Select(assessmentColumns...).From("assessments").Where(where).
		OrderBy("date DESC NULLS LAST", "created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list %s query: %w", kind, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("kind", string(kind)).Msg("Error executing list assessments query")
		return nil, 0, fmt.Errorf("failed to query %ss: %w", kind, err)
	}
	defer rows.Close()

	items := make([]*models.Assessment, 0, page.Limit)
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan %s row: %w", kind, err)
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

// Update stores the mutable fields of a. Total marks are owned by question writes and left untouched.
func (r *AssessmentRepository) Update(ctx context.Context, a *models.Assessment) error {
	sql, args, err := r.sb.Update("assessments").
		Set("course_id", a.CourseID).
		Set("lesson_id", a.LessonID).
		Set("title", a.Title).
		Set("date", a.Date).
		Set("time_limit_min", a.TimeLimitMin).
		Set("type", a.Type).
		Set("is_active", a.IsActive).
		Set("mandatory_attendance", a.MandatoryAttendance).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": a.ID, "kind": a.Kind}).
		Suffix("RETURNING total_marks, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update %s query: %w", a.Kind, err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.TotalMarks, &a.UpdatedAt); err != nil {
		if refErr := assessmentReferenceError(err); refErr != nil {
			return refErr
		}
		return notFound(err, NotFoundError(a.Kind))
	}
	return nil
}

// Delete removes an exam or assignment with its questions and submissions
func (r *AssessmentRepository) Delete(ctx context.Context, kind models.AssessmentKind, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM assessments WHERE id = $1 AND kind = $2`, id, kind)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Str("kind", string(kind)).Msg("Error deleting assessment")
		return fmt.Errorf("error deleting %s: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return NotFoundError(kind)
	}
	return nil
}
