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

const subscriptionsUserCourseKey = "subscriptions_user_course_key"

// SubscriptionRepository handles course subscription database operations
type SubscriptionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{db: db, sb: newStatementBuilder()}
}

var subscriptionColumns = []string{
	"s.id", "s.user_id", "s.course_id", "s.status", "s.subscribed_at", "s.payment_method",
	"s.vodafone_receipt", "s.expires_at", "s.created_at", "s.updated_at", "u.name", "u.phone",
}

func (r *SubscriptionRepository) selectSubscriptions() squirrel.SelectBuilder {
	cols := append(append(append([]string{}, subscriptionColumns...), courseColumns...), levelColumns...)
	return r.sb.Select(cols...).
		From("subscriptions s").
		Join("users u ON u.id = s.user_id").
		Join("courses c ON c.id = s.course_id").
		LeftJoin("educational_levels el ON el.id = c.educational_level_id")
}

func scanSubscription(row rowScanner) (*models.Subscription, error) {
	var s models.Subscription
	var user models.UserSummary
	var c models.Course
	var lvl nullableLevel
	dest := []any{
		&s.ID, &s.UserID, &s.CourseID, &s.Status, &s.SubscribedAt, &s.PaymentMethod,
		&s.VodafoneReceipt, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt, &user.Name, &user.Phone,
		&c.ID, &c.Title, &c.Year, &c.ShortDescription, &c.FullDescription, &c.Price, &c.Image,
		&c.VodafoneNumber, &c.Month, &c.IsActive, &c.EducationalLevelID, &c.CreatedAt, &c.UpdatedAt,
	}
	if err := row.Scan(append(dest, lvl.dest()...)...); err != nil {
		return nil, err
	}
	user.ID = s.UserID
	c.EducationalLevel = lvl.model()
	s.User = &user
	s.Course = &c
	return &s, nil
}

// Create inserts a subscription. A second subscription to the same course fails with ErrAlreadySubscribed.
func (r *SubscriptionRepository) Create(ctx context.Context, s *models.Subscription) error {
	sql, args, err := r.sb.Insert("subscriptions").
		Columns("user_id", "course_id", "status", "payment_method", "vodafone_receipt", "expires_at").
		Values(s.UserID, s.CourseID, s.Status, s.PaymentMethod, s.VodafoneReceipt, s.ExpiresAt).
		Suffix("RETURNING id, subscribed_at, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create subscription query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.SubscribedAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, subscriptionsUserCourseKey) {
			return apperrors.ErrAlreadySubscribed
		}
		if dberrors.IsForeignKeyError(err, "") {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("userId", s.UserID).Int64("courseId", s.CourseID).Msg("Error creating subscription")
		return fmt.Errorf("error creating subscription: %w", err)
	}
	return nil
}

// Exists reports whether the user already has a subscription to the course
func (r *SubscriptionRepository) Exists(ctx context.Context, userID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM subscriptions WHERE user_id = $1 AND course_id = $2)`,
		userID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking subscription existence: %w", err)
	}
	return exists, nil
}

// HasActive reports whether the user holds an active, unexpired subscription to the course
func (r *SubscriptionRepository) HasActive(ctx context.Context, userID, courseID int64, at time.Time) (bool, error) {
	var active bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM subscriptions
			WHERE user_id = $1 AND course_id = $2 AND status = 'active'
			  AND (expires_at IS NULL OR expires_at > $3)
		)`, userID, courseID, at).Scan(&active)
	if err != nil {
		return false, fmt.Errorf("error checking active subscription: %w", err)
	}
	return active, nil
}

// GetByID retrieves a subscription with its user and course
func (r *SubscriptionRepository) GetByID(ctx context.Context, id int64) (*models.Subscription, error) {
	sql, args, err := r.selectSubscriptions().Where(squirrel.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subscription query: %w", err)
	}

	s, err := scanSubscription(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFound(err, apperrors.ErrSubscriptionNotFound)
	}
	return s, nil
}

// List returns a page of subscriptions, newest first. A zero page limit returns every row.
func (r *SubscriptionRepository) List(ctx context.Context, filter dto.SubscriptionFilter, page helpers.PageRequest) ([]*models.Subscription, int64, error) {
	where := squirrel.And{}
	if filter.UserID != nil {
		where = append(where, squirrel.Eq{"s.user_id": *filter.UserID})
	}
	if filter.Status != "" && filter.Status != "all" {
		where = append(where, squirrel.Eq{"s.status": filter.Status})
	}

	total, err := count(ctx, r.db, r.sb.Select("COUNT(*)").From("subscriptions s").Where(where), "subscriptions")
	if err != nil || total == 0 {
		return []*models.Subscription{}, total, err
	}

	query := r.selectSubscriptions().Where(where).OrderBy("s.subscribed_at DESC", "s.id DESC")
	if page.Limit > 0 {
		query = query.Limit(uint64(page.Limit)).Offset(page.Offset())
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list subscriptions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list subscriptions query")
		return nil, 0, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	items := []*models.Subscription{}
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning subscription row")
			return nil, 0, fmt.Errorf("failed to scan subscription row: %w", err)
		}
		items = append(items, s)
	}
	return items, total, rows.Err()
}

// UpdateStatus sets the payment decision and expiry
func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, id int64, status models.SubscriptionStatus, expiresAt *time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE subscriptions SET status = $1, expires_at = $2, updated_at = NOW() WHERE id = $3`,
		status, expiresAt, id)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error updating subscription status")
		return fmt.Errorf("error updating subscription status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubscriptionNotFound
	}
	return nil
}
