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

// EducationalLevelRepository handles educational level database operations
type EducationalLevelRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEducationalLevelRepository creates a new EducationalLevelRepository
func NewEducationalLevelRepository(db *pgxpool.Pool) *EducationalLevelRepository {
	return &EducationalLevelRepository{db: db, sb: newStatementBuilder()}
}

var educationalLevelColumns = []string{
	"id", "name", "name_ar", "level", "year", "is_active", "sort_order", "created_at", "updated_at",
}

func scanEducationalLevel(row rowScanner) (*models.EducationalLevel, error) {
	var l models.EducationalLevel
	err := row.Scan(&l.ID, &l.Name, &l.NameAr, &l.Level, &l.Year, &l.IsActive, &l.Order, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func levelConflict(err error) error {
	if dberrors.IsDuplicateConstraintError(err, "") {
		return apperrors.NewConflictError("An educational level with this name, Arabic name or order already exists")
	}
	return nil
}

// Create inserts an educational level
func (r *EducationalLevelRepository) Create(ctx context.Context, level *models.EducationalLevel) error {
	sql, args, err := r.sb.Insert("educational_levels").
		Columns("name", "name_ar", "level", "year", "is_active", "sort_order").
		Values(level.Name, level.NameAr, level.Level, level.Year, level.IsActive, level.Order).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create educational level query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&level.ID, &level.CreatedAt, &level.UpdatedAt); err != nil {
		if cErr := levelConflict(err); cErr != nil {
			return cErr
		}
		logger.Error().Err(err).Msg("Error creating educational level")
		return fmt.Errorf("error creating educational level: %w", err)
	}
	return nil
}

// GetByID retrieves an educational level
func (r *EducationalLevelRepository) GetByID(ctx context.Context, id int64) (*models.EducationalLevel, error) {
	sql, args, err := r.sb.Select(educationalLevelColumns...).From("educational_levels").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get educational level query: %w", err)
	}

	level, err := scanEducationalLevel(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFound(err, apperrors.ErrEducationalLevelNotFound)
	}
	return level, nil
}

// List returns a page of levels sorted by order
func (r *EducationalLevelRepository) List(ctx context.Context, filter dto.EducationalLevelFilter, page helpers.PageRequest) ([]*models.EducationalLevel, int64, error) {
	where := squirrel.And{}
	if filter.Level != "" {
		where = append(where, squirrel.Eq{"level": filter.Level})
	}
	if filter.IsActive != nil {
		where = append(where, squirrel.Eq{"is_active": *filter.IsActive})
	}

	total, err := count(ctx, r.db, r.sb.Select("COUNT(*)").From("educational_levels").Where(where), "educational levels")
	if err != nil || total == 0 {
		return []*models.EducationalLevel{}, total, err
	}

	sql, args, err := r.sb.Select(educationalLevelColumns...).From("educational_levels").Where(where).
		OrderBy("sort_order ASC").
		Limit(uint64(page.Limit)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list educational levels query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list educational levels query")
		return nil, 0, fmt.Errorf("failed to query educational levels: %w", err)
	}
	defer rows.Close()

	levels := make([]*models.EducationalLevel, 0, page.Limit)
	for rows.Next() {
		l, err := scanEducationalLevel(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan educational level row: %w", err)
		}
		levels = append(levels, l)
	}
	return levels, total, rows.Err()
}

// Update stores every mutable field of level
func (r *EducationalLevelRepository) Update(ctx context.Context, level *models.EducationalLevel) error {
	sql, args, err := r.sb.Update("educational_levels").
		Set("name", level.Name).
		Set("name_ar", level.NameAr).
		Set("level", level.Level).
		Set("year", level.Year).
		Set("is_active", level.IsActive).
		Set("sort_order", level.Order).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": level.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update educational level query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&level.UpdatedAt); err != nil {
		if cErr := levelConflict(err); cErr != nil {
			return cErr
		}
		return notFound(err, apperrors.ErrEducationalLevelNotFound)
	}
	return nil
}

// Delete removes an educational level. Users and courses referencing it keep a NULL level.
func (r *EducationalLevelRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM educational_levels WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting educational level")
		return fmt.Errorf("error deleting educational level: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEducationalLevelNotFound
	}
	return nil
}

// CreateIfMissing inserts the level unless it collides with an existing one. It reports whether a row was added.
func (r *EducationalLevelRepository) CreateIfMissing(ctx context.Context, level *models.EducationalLevel) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO educational_levels (name, name_ar, level, year, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT DO NOTHING`,
		level.Name, level.NameAr, level.Level, level.Year, level.IsActive, level.Order)
	if err != nil {
		return false, fmt.Errorf("error seeding educational level: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
