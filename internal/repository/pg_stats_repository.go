package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/terroir-ai/backend/internal/model"
)

// StatsRepository aggregates counts across tables for the admin dashboard.
type StatsRepository interface {
	Snapshot(ctx context.Context, now time.Time) (*model.AdminStats, error)
}

// PgStatsRepository is the PostgreSQL implementation of StatsRepository.
type PgStatsRepository struct {
	pool *pgxpool.Pool
}

// NewPgStatsRepository creates a PgStatsRepository backed by the given pool.
func NewPgStatsRepository(pool *pgxpool.Pool) *PgStatsRepository {
	return &PgStatsRepository{pool: pool}
}

var _ StatsRepository = (*PgStatsRepository)(nil)

// Snapshot collects total / 24h / 7d counts for each tracked table.
// One query per table keeps the SQL trivial; the admin dashboard is the only
// caller and is not latency sensitive.
func (r *PgStatsRepository) Snapshot(ctx context.Context, now time.Time) (*model.AdminStats, error) {
	day := now.Add(-24 * time.Hour)
	week := now.Add(-7 * 24 * time.Hour)

	var stats model.AdminStats
	for _, q := range []struct {
		table string
		dst   *model.CountStats
	}{
		{"contact_submissions", &stats.Contacts},
		{"waitlist_entries", &stats.Waitlist},
		{"analytics_page_views", &stats.PageViews},
		{"analytics_events", &stats.Events},
	} {
		err := r.pool.QueryRow(ctx,
			`SELECT COUNT(*),
			        COUNT(*) FILTER (WHERE created_at > $1),
			        COUNT(*) FILTER (WHERE created_at > $2)
			 FROM `+q.table,
			day, week,
		).Scan(&q.dst.Total, &q.dst.Last24, &q.dst.Last7d)
		if err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
