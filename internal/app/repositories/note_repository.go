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

// NoteRepository handles notes and their cash-on-delivery orders
type NoteRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{db: db, sb: newStatementBuilder()}
}

var noteColumns = []string{"n.id", "n.title", "n.year", "n.description", "n.price", "n.image", "n.is_active", "n.created_at", "n.updated_at"}

func noteDest(n *models.Note) []any {
	return []any{&n.ID, &n.Title, &n.Year, &n.Description, &n.Price, &n.Image, &n.IsActive, &n.CreatedAt, &n.UpdatedAt}
}

func scanNote(row rowScanner) (*models.Note, error) {
	var n models.Note
	if err := row.Scan(noteDest(&n)...); err != nil {
		return nil, err
	}
	return &n, nil
}

// Create inserts a note
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	sql, args, err := r.sb.Insert("notes").
		Columns("title", "year", "description", "price", "image", "is_active").
		Values(note.Title, note.Year, note.Description, note.Price, note.Image, note.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create note query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt); err != nil {
		logger.Error().Err(err).Msg("Error creating note")
		return fmt.Errorf("error creating note: %w", err)
	}
	return nil
}

// GetByID retrieves a note
func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	sql, args, err := r.sb.Select(noteColumns...).From("notes n").Where(squirrel.Eq{"n.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get note query: %w", err)
	}

	n, err := scanNote(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFound(err, apperrors.ErrNoteNotFound)
	}
	return n, nil
}

// List returns a page of notes, newest first
func (r *NoteRepository) List(ctx context.Context, filter dto.NoteFilter, page helpers.PageRequest) ([]*models.Note, int64, error) {
	where := squirrel.And{}
	if filter.Year != "" {
		where = append(where, squirrel.Eq{"n.year": filter.Year})
	}
	if filter.IsActive != nil {
		where = append(where, squirrel.Eq{"n.is_active": *filter.IsActive})
	}

	total, err := count(ctx, r.db, r.sb.Select("COUNT(*)").From("notes n").Where(where), "notes")
	if err != nil || total == 0 {
		return []*models.Note{}, total, err
	}

	sql, args, err := r.sb.Select(noteColumns...).From("notes n").Where(where).
		OrderBy("n.created_at DESC", "n.id DESC").
		Limit(uint64(page.Limit)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list notes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list notes query")
		return nil, 0, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	items := make([]*models.Note, 0, page.Limit)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan note row: %w", err)
		}
		items = append(items, n)
	}
	return items, total, rows.Err()
}

// Update stores every mutable field of note
func (r *NoteRepository) Update(ctx context.Context, note *models.Note) error {
	sql, args, err := r.sb.Update("notes").
		Set("title", note.Title).
		Set("year", note.Year).
		Set("description", note.Description).
		Set("price", note.Price).
		Set("image", note.Image).
		Set("is_active", note.IsActive).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": note.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update note query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&note.UpdatedAt); err != nil {
		return notFound(err, apperrors.ErrNoteNotFound)
	}
	return nil
}

// Delete removes a note and its orders
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting note")
		return fmt.Errorf("error deleting note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

var noteOrderColumns = []string{
	"o.id", "o.note_id", "o.user_id", "o.name", "o.student_phone", "o.guardian_phone", "o.address",
	"o.payment_method", "o.status", "o.ordered_at", "o.created_at", "o.updated_at",
}

func (r *NoteRepository) selectOrders() squirrel.SelectBuilder {
	return r.sb.Select(append(append([]string{}, noteOrderColumns...), noteColumns...)...).
		From("note_orders o").
		Join("notes n ON n.id = o.note_id")
}

func scanNoteOrder(row rowScanner) (*models.NoteOrder, error) {
	var o models.NoteOrder
	var n models.Note
	dest := []any{
		&o.ID, &o.NoteID, &o.UserID, &o.Name, &o.StudentPhone, &o.GuardianPhone, &o.Address,
		&o.PaymentMethod, &o.Status, &o.OrderedAt, &o.CreatedAt, &o.UpdatedAt,
	}
	if err := row.Scan(append(dest, noteDest(&n)...)...); err != nil {
		return nil, err
	}
	o.Note = &n
	return &o, nil
}

// CreateOrder inserts a note order
func (r *NoteRepository) CreateOrder(ctx context.Context, o *models.NoteOrder) error {
	sql, args, err := r.sb.Insert("note_orders").
		Columns("note_id", "user_id", "name", "student_phone", "guardian_phone", "address", "payment_method", "status").
		Values(o.NoteID, o.UserID, o.Name, o.StudentPhone, o.GuardianPhone, o.Address, o.PaymentMethod, o.Status).
		Suffix("RETURNING id, ordered_at, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create note order query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&o.ID, &o.OrderedAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyError(err, "note_orders_note_id_fkey") {
			return apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Int64("noteId", o.NoteID).Msg("Error creating note order")
		return fmt.Errorf("error creating note order: %w", err)
	}
	return nil
}

// GetOrderByID retrieves a note order with its note
func (r *NoteRepository) GetOrderByID(ctx context.Context, id int64) (*models.NoteOrder, error) {
	sql, args, err := r.selectOrders().Where(squirrel.Eq{"o.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get note order query: %w", err)
	}

	o, err := scanNoteOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFound(err, apperrors.ErrNoteOrderNotFound)
	}
	return o, nil
}

// ListOrders returns a page of note orders, newest first
func (r *NoteRepository) ListOrders(ctx context.Context, filter dto.NoteOrderFilter, page helpers.PageRequest) ([]*models.NoteOrder, int64, error) {
	where := squirrel.And{}
	if filter.UserID != nil {
		where = append(where, squirrel.Eq{"o.user_id": *filter.UserID})
	}
	if filter.Status != "" {
		where = append(where, squirrel.Eq{"o.status": filter.Status})
	}

	total, err := count(ctx, r.db, r.sb.Select("COUNT(*)").From("note_orders o").Where(where), "note orders")
	if err != nil || total == 0 {
		return []*models.NoteOrder{}, total, err
	}

	sql, args, err := r.selectOrders().Where(where).
		OrderBy("o.ordered_at DESC", "o.id DESC").
		Limit(uint64(page.Limit)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list note orders query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list note orders query")
		return nil, 0, fmt.Errorf("failed to query note orders: %w", err)
	}
	defer rows.Close()

	items := make([]*models.NoteOrder, 0, page.Limit)
	for rows.Next() {
		o, err := scanNoteOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan note order row: %w", err)
		}
		items = append(items, o)
	}
	return items, total, rows.Err()
}

// UpdateOrderStatus changes an order's delivery status
func (r *NoteRepository) UpdateOrderStatus(ctx context.Context, id int64, status models.NoteOrderStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE note_orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error updating note order status")
		return fmt.Errorf("error updating note order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoteOrderNotFound
	}
	return nil
}
