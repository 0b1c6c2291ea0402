package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/helpers"
	"github.com/genius/elearning/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubmissionRepository handles graded exam and assignment submissions
type SubmissionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{db: db, sb: newStatementBuilder()}
}

var submissionColumns = []string{
	"s.id", "s.user_id", "s.assessment_id", "a.kind", "s.answers", "s.score", "s.total_marks",
	"s.submitted_at", "s.is_graded", "s.graded_at", "s.graded_by", "u.name", "u.phone",
}

func (r *SubmissionRepository) selectSubmissions() squirrel.SelectBuilder {
	return r.sb.Select(submissionColumns...).
		From("submissions s").
		Join("assessments a ON a.id = s.assessment_id").
		Join("users u ON u.id = s.user_id")
}

func scanSubmission(row rowScanner) (*models.Submission, error) {
	var s models.Submission
	var kind models.AssessmentKind
	var user models.UserSummary
	err := row.Scan(&s.ID, &s.UserID, &s.ExamID, &kind, &s.Answers, &s.Score, &s.TotalMarks,
		&s.SubmittedAt, &s.IsGraded, &s.GradedAt, &s.GradedBy, &user.Name, &user.Phone)
	if err != nil {
		return nil, err
	}
	s.OnModel = kind.OnModel()
	user.ID = s.UserID
	s.User = &user
	if s.Answers == nil {
		s.Answers = []models.Answer{}
	}
	return &s, nil
}

// Create stores a graded submission
func (r *SubmissionRepository) Create(ctx context.Context, s *models.Submission) error {
	if s.Answers == nil {
		s.Answers = []models.Answer{}
	}

	sql, args, err := r.sb.Insert("submissions").
		Columns("user_id", "assessment_id", "answers", "score", "total_marks", "submitted_at", "is_graded", "graded_at", "graded_by").
		Values(s.UserID, s.ExamID, s.Answers, s.Score, s.TotalMarks, s.SubmittedAt, s.IsGraded, s.GradedAt, s.GradedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create submission query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID); err != nil {
		logger.Error().Err(err).Int64("userId", s.UserID).Int64("assessmentId", s.ExamID).Msg("Error creating submission")
		return fmt.Errorf("error creating submission: %w", err)
	}
	return nil
}

// LatestByUser returns the user's most recent submission for an exam or assignment
func (r *SubmissionRepository) LatestByUser(ctx context.Context, kind models.AssessmentKind, assessmentID, userID int64) (*models.Submission, error) {
	sql, args, err := r.selectSubmissions().
		Where(squirrel.Eq{"s.assessment_id": assessmentID, "s.user_id": userID, "a.kind": kind}).
		OrderBy("s.submitted_at DESC", "s.id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build latest submission query: %w", err)
	}

	s, err := scanSubmission(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFound(err, apperrors.ErrSubmissionNotFound)
	}
	return s, nil
}

// ListByAssessment returns a page of submissions, newest first. A zero page limit returns every row.
func (r *SubmissionRepository) ListByAssessment(ctx context.Context, kind models.AssessmentKind, assessmentID int64, page helpers.PageRequest) ([]*models.Submission, int64, error) {
	where := squirrel.Eq{"s.assessment_id": assessmentID, "a.kind": kind}

	total, err := count(ctx, r.db,
		r.sb.Select("COUNT(*)").From("submissions s").Join("assessments a ON a.id = s.assessment_id").Where(where),
		"submissions")
	if err != nil || total == 0 {
		return []*models.Submission{}, total, err
	}

	query := r.selectSubmissions().Where(where).OrderBy("s.submitted_at DESC", "s.id DESC")
	if page.Limit > 0 {
		query = query.Limit(uint64(page.Limit)).Offset(page.Offset())
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list submissions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assessmentId", assessmentID).Msg("Error executing list submissions query")
		return nil, 0, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	items := []*models.Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan submission row: %w", err)
		}
		items = append(items, s)
	}
	return items, total, rows.Err()
}
