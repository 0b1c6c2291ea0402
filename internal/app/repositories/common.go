package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// rowScanner is satisfied by pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// notFound converts pgx.ErrNoRows into the given sentinel
func notFound(err, sentinel error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sentinel
	}
	return err
}

// chunk splits items into consecutive slices of at most size elements
func chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		return [][]T{items}
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}

// count runs a COUNT(*) built by squirrel
func count(ctx context.Context, q querier, builder squirrel.SelectBuilder, what string) (int64, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("entity", what).Msg("Error building count SQL")
		return 0, fmt.Errorf("failed to build count %s query: %w", what, err)
	}

	var total int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Str("entity", what).Msg("Error executing count query")
		return 0, fmt.Errorf("failed to count %s: %w", what, err)
	}
	return total, nil
}

// groupCount runs "SELECT col, COUNT(*) FROM table GROUP BY col"
func groupCount(ctx context.Context, q querier, sb squirrel.StatementBuilderType, table, column string) (map[string]int64, error) {
	sql, args, err := sb.Select(column, "COUNT(*)").From(table).GroupBy(column).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build group count query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error executing group count query")
		return nil, fmt.Errorf("failed to count %s by %s: %w", table, column, err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var key string
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("failed to scan group count row: %w", err)
		}
		counts[key] = n
	}
	return counts, rows.Err()
}

func likePattern(s string) string {
	return "%" + strings.TrimSpace(s) + "%"
}

// levelColumns are selected through "LEFT JOIN educational_levels el"
var levelColumns = []string{
	"el.id", "el.name", "el.name_ar", "el.level", "el.year",
	"el.is_active", "el.sort_order", "el.created_at", "el.updated_at",
}

// nullableLevel receives a LEFT JOINed educational level
type nullableLevel struct {
	ID        *int64
	Name      *string
	NameAr    *string
	Level     *string
	Year      *int
	IsActive  *bool
	Order     *int
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

func (n *nullableLevel) dest() []any {
	return []any{&n.ID, &n.Name, &n.NameAr, &n.Level, &n.Year, &n.IsActive, &n.Order, &n.CreatedAt, &n.UpdatedAt}
}

func (n *nullableLevel) model() *models.EducationalLevel {
	if n.ID == nil {
		return nil
	}
	lvl := &models.EducationalLevel{ID: *n.ID}
	if n.Name != nil {
		lvl.Name = *n.Name
	}
	if n.NameAr != nil {
		lvl.NameAr = *n.NameAr
	}
	if n.Level != nil {
		lvl.Level = models.Stage(*n.Level)
	}
	if n.Year != nil {
		lvl.Year = *n.Year
	}
	if n.IsActive != nil {
		lvl.IsActive = *n.IsActive
	}
	if n.Order != nil {
		lvl.Order = *n.Order
	}
	if n.CreatedAt != nil {
		lvl.CreatedAt = *n.CreatedAt
	}
	if n.UpdatedAt != nil {
		lvl.UpdatedAt = *n.UpdatedAt
	}
	return lvl
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
