package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/db"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/helpers"
	"github.com/genius/elearning/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db, sb: newStatementBuilder()}
}

var notificationColumns = []string{"id", "user_id", "title", "message", "type", "read", "created_at", "updated_at"}

func scanNotification(row rowScanner) (*models.Notification, error) {
	var n models.Notification
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

// notificationBatchSize rows per INSERT keeps each statement far below the 65535 bind parameter limit
const notificationBatchSize = 1000

// CreateMany inserts the notifications in batches within one transaction and fills ids and timestamps
func (r *NotificationRepository) CreateMany(ctx context.Context, items []*models.Notification) error {
	if len(items) == 0 {
		return nil
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, batch := range chunk(items, notificationBatchSize) {
			if err := r.insertBatch(ctx, tx, batch); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *NotificationRepository) buildInsert(batch []*models.Notification) (string, []any, error) {
	insert := r.sb.Insert("notifications").Columns("user_id", "title", "message", "type", "read")
	for _, n := range batch {
		insert = insert.Values(n.UserID, n.Title, n.Message, n.Type, n.Read)
	}
	return insert.Suffix("RETURNING id, created_at, updated_at").ToSql()
}

func (r *NotificationRepository) insertBatch(ctx context.Context, q querier, batch []*models.Notification) error {
	sql, args, err := r.buildInsert(batch)
	if err != nil {
		return fmt.Errorf("failed to build create notifications query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("count", len(batch)).Msg("Error creating notifications")
		return fmt.Errorf("error creating notifications: %w", err)
	}
	defer rows.Close()

	// RETURNING preserves VALUES order for a plain INSERT
	i := 0
	for rows.Next() {
		if i >= len(batch) {
			break
		}
		if err := rows.Scan(&batch[i].ID, &batch[i].CreatedAt, &batch[i].UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan created notification: %w", err)
		}
		i++
	}
	return rows.Err()
}

// Create inserts a single notification
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.CreateMany(ctx, []*models.Notification{n})
}

// ListByUser returns a page of the user's notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, filter dto.NotificationFilter, page helpers.PageRequest) ([]*models.Notification, int64, error) {
	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if filter.Type != "" {
		where = append(where, squirrel.Eq{"type": filter.Type})
	}
	if filter.Read != nil {
		where = append(where, squirrel.Eq{"read": *filter.Read})
	}

	total, err := count(ctx, r.db, r.sb.Select("COUNT(*)").From("notifications").Where(where), "notifications")
	if err != nil || total == 0 {
		return []*models.Notification{}, total, err
	}

	sql, args, err := r.sb.Select(notificationColumns...).From("notifications").Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userId", userID).Msg("Error executing list notifications query")
		return nil, 0, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	items := make([]*models.Notification, 0, page.Limit)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification row: %w", err)
		}
		items = append(items, n)
	}
	return items, total, rows.Err()
}

// MarkRead marks one of the user's notifications as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) (*models.Notification, error) {
	sql, args, err := r.sb.Update("notifications").
		Set("read", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + joinColumns(notificationColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build mark read query: %w", err)
	}

	n, err := scanNotification(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFound(err, apperrors.ErrNotificationNotFound)
	}
	return n, nil
}

// MarkAllRead marks every unread notification of the user and returns how many changed
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = TRUE, updated_at = NOW() WHERE user_id = $1 AND read = FALSE`, userID)
	if err != nil {
		logger.Error().Err(err).Int64("userId", userID).Msg("Error marking notifications read")
		return 0, fmt.Errorf("error marking notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountUnread returns the number of unread notifications of the user
func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return count(ctx, r.db,
		r.sb.Select("COUNT(*)").From("notifications").Where(squirrel.Eq{"user_id": userID, "read": false}),
		"unread notifications")
}
