package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/db"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QuestionRepository handles question database operations.
// Every write recomputes the owning assessment's total marks in the same transaction.
type QuestionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db, sb: newStatementBuilder()}
}

var questionColumns = []string{
	"q.id", "q.assessment_id", "a.kind", "q.type", "q.content", "q.options", "q.correct",
	"q.explanation", "q.sort_order", "q.marks", "q.created_at", "q.updated_at",
}

func (r *QuestionRepository) selectQuestions() squirrel.SelectBuilder {
	return r.sb.Select(questionColumns...).
		From("questions q").
		Join("assessments a ON a.id = q.assessment_id")
}

func scanQuestion(row rowScanner) (*models.Question, error) {
	var q models.Question
	var kind models.AssessmentKind
	err := row.Scan(&q.ID, &q.ExamID, &kind, &q.Type, &q.Content, &q.Options, &q.Correct,
		&q.Explanation, &q.Order, &q.Marks, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	q.OnModel = kind.OnModel()
	if q.Options == nil {
		q.Options = []models.QuestionOption{}
	}
	return &q, nil
}

// lockAssessment takes a row lock on the owning assessment so concurrent
// question writes recompute totals one after another.
func lockAssessment(ctx context.Context, tx pgx.Tx, kind models.AssessmentKind, id int64) error {
	var locked int64
	err := tx.QueryRow(ctx, `SELECT id FROM assessments WHERE id = $1 AND kind = $2 FOR UPDATE`, id, kind).Scan(&locked)
	if err != nil {
		return notFound(err, NotFoundError(kind))
	}
	return nil
}

// recomputeTotalMarks sets total_marks to the sum of the assessment's question marks
func recomputeTotalMarks(ctx context.Context, q querier, assessmentID int64) (int, error) {
	var total int
	err := q.QueryRow(ctx, `
		UPDATE assessments
		SET total_marks = (SELECT COALESCE(SUM(marks), 0) FROM questions WHERE assessment_id = $1),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING total_marks`, assessmentID).Scan(&total)
	if err != nil {
		logger.Error().Err(err).Int64("assessmentId", assessmentID).Msg("Error recomputing total marks")
		return 0, fmt.Errorf("error recomputing total marks: %w", err)
	}
	return total, nil
}

// Create inserts a question and returns the assessment's new total marks
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) (int, error) {
	kind := models.KindFromOnModel(question.OnModel)
	question.OnModel = kind.OnModel()

	var total int
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockAssessment(ctx, tx, kind, question.ExamID); err != nil {
			return err
		}

		sql, args, err := r.sb.Insert("questions").
			Columns("assessment_id", "type", "content", "options", "correct", "explanation", "sort_order", "marks").
			Values(question.ExamID, question.Type, question.Content, question.Options, question.Correct,
				question.Explanation, question.Order, question.Marks).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create question query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&question.ID, &question.CreatedAt, &question.UpdatedAt); err != nil {
			logger.Error().Err(err).Msg("Error creating question")
			return fmt.Errorf("error creating question: %w", err)
		}

		total, err = recomputeTotalMarks(ctx, tx, question.ExamID)
		return err
	})
	return total, err
}

// GetByID retrieves a question with its owning model name
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	sql, args, err := r.selectQuestions().Where(squirrel.Eq{"q.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get question query: %w", err)
	}

	q, err := scanQuestion(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFound(err, apperrors.ErrQuestionNotFound)
	}
	return q, nil
}

// ListByAssessment returns all questions of an exam or assignment in order
func (r *QuestionRepository) ListByAssessment(ctx context.Context, kind models.AssessmentKind, assessmentID int64) ([]*models.Question, error) {
	sql, args, err := r.selectQuestions().
		Where(squirrel.Eq{"q.assessment_id": assessmentID, "a.kind": kind}).
		OrderBy("q.sort_order ASC", "q.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list questions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assessmentId", assessmentID).Msg("Error executing list questions query")
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []*models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question row: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// Update stores every mutable field of question and returns the new total marks
func (r *QuestionRepository) Update(ctx context.Context, question *models.Question) (int, error) {
	kind := models.KindFromOnModel(question.OnModel)

	var total int
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockAssessment(ctx, tx, kind, question.ExamID); err != nil {
			return err
		}

		sql, args, err := r.sb.Update("questions").
			Set("type", question.Type).
			Set("content", question.Content).
			Set("options", question.Options).
			Set("correct", question.Correct).
			Set("explanation", question.Explanation).
			Set("sort_order", question.Order).
			Set("marks", question.Marks).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": question.ID, "assessment_id": question.ExamID}).
			Suffix("RETURNING updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update question query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&question.UpdatedAt); err != nil {
			return notFound(err, apperrors.ErrQuestionNotFound)
		}

		total, err = recomputeTotalMarks(ctx, tx, question.ExamID)
		return err
	})
	return total, err
}

// Delete removes a question and returns the owning assessment's new total marks
func (r *QuestionRepository) Delete(ctx context.Context, question *models.Question) (int, error) {
	kind := models.KindFromOnModel(question.OnModel)

	var total int
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockAssessment(ctx, tx, kind, question.ExamID); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `DELETE FROM questions WHERE id = $1 AND assessment_id = $2`, question.ID, question.ExamID)
		if err != nil {
			logger.Error().Err(err).Int64("id", question.ID).Msg("Error deleting question")
			return fmt.Errorf("error deleting question: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrQuestionNotFound
		}

		total, err = recomputeTotalMarks(ctx, tx, question.ExamID)
		return err
	})
	return total, err
}
