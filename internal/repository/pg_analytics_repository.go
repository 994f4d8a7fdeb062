package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/terroir-ai/backend/internal/model"
)

// AnalyticsRepository defines the persistence interface for pageview and
// event recording. Both operations are append-only.
type AnalyticsRepository interface {
	InsertPageView(ctx context.Context, pv *model.PageView) error
	InsertEvent(ctx context.Context, ev *model.Event) error
}

// PgAnalyticsRepository is the PostgreSQL implementation of AnalyticsRepository.
type PgAnalyticsRepository struct {
	pool *pgxpool.Pool
}

// NewPgAnalyticsRepository creates a PgAnalyticsRepository backed by the given pool.
func NewPgAnalyticsRepository(pool *pgxpool.Pool) *PgAnalyticsRepository {
	return &PgAnalyticsRepository{pool: pool}
}

var _ AnalyticsRepository = (*PgAnalyticsRepository)(nil)

// InsertPageView appends one analytics_page_views row.
func (r *PgAnalyticsRepository) InsertPageView(ctx context.Context, pv *model.PageView) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO analytics_page_views
		     (session_id, visitor_id, path, referrer, utm_source, utm_medium,
		      utm_campaign, utm_term, utm_content, screen_width)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''),
		         NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10)`,
		pv.SessionID, pv.VisitorID, pv.Path, pv.Referrer, pv.UTMSource, pv.UTMMedium,
		pv.UTMCampaign, pv.UTMTerm, pv.UTMContent, pv.ScreenWidth,
	)
	return err
}

// InsertEvent appends one analytics_events row.
func (r *PgAnalyticsRepository) InsertEvent(ctx context.Context, ev *model.Event) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO analytics_events
		     (session_id, visitor_id, event_name, event_category, event_label,
		      event_value, properties, path)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, NULLIF($8, ''))`,
		ev.SessionID, ev.VisitorID, ev.EventName, ev.EventCategory, ev.EventLabel,
		ev.EventValue, ev.Properties, ev.Path,
	)
	return err
}
