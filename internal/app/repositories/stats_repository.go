package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepository aggregates counts for the admin dashboard
type StatsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db, sb: newStatementBuilder()}
}

// Collect gathers every dashboard counter
func (r *StatsRepository) Collect(ctx context.Context) (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{}
	var err error

	if stats.Users, err = groupCount(ctx, r.db, r.sb, "users", "role"); err != nil {
		return nil, err
	}
	if stats.Subscriptions, err = groupCount(ctx, r.db, r.sb, "subscriptions", "status"); err != nil {
		return nil, err
	}
	if stats.NoteOrders, err = groupCount(ctx, r.db, r.sb, "note_orders", "status"); err != nil {
		return nil, err
	}

	counters := []struct {
		dest    *int64
		builder squirrel.SelectBuilder
		what    string
	}{
		{&stats.Courses, r.sb.Select("COUNT(*)").From("courses"), "courses"},
		{&stats.ActiveCourses, r.sb.Select("COUNT(*)").From("courses").Where(squirrel.Eq{"is_active": true}), "active courses"},
		{&stats.Lessons, r.sb.Select("COUNT(*)").From("lessons"), "lessons"},
		{&stats.Exams, r.sb.Select("COUNT(*)").From("assessments").Where(squirrel.Eq{"kind": "exam"}), "exams"},
		{&stats.Assignments, r.sb.Select("COUNT(*)").From("assessments").Where(squirrel.Eq{"kind": "assignment"}), "assignments"},
		{&stats.Questions, r.sb.Select("COUNT(*)").From("questions"), "questions"},
		{&stats.Submissions, r.sb.Select("COUNT(*)").From("submissions"), "submissions"},
	}
	for _, c := range counters {
		if *c.dest, err = count(ctx, r.db, c.builder, c.what); err != nil {
			return nil, err
		}
	}

	return stats, nil
}
