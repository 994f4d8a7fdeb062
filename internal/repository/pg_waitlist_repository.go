package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/terroir-ai/backend/internal/model"
)

// WaitlistRepository defines the persistence interface for waitlist entries.
type WaitlistRepository interface {
	Upsert(ctx context.Context, entry *model.WaitlistEntry) error
	CountRecentByEmail(ctx context.Context, email string, since time.Time) (int, error)
	List(ctx context.Context, opts model.ListOptions) ([]*model.WaitlistEntry, error)
}

// PgWaitlistRepository is the PostgreSQL implementation of WaitlistRepository.
type PgWaitlistRepository struct {
	pool *pgxpool.Pool
}

// NewPgWaitlistRepository creates a PgWaitlistRepository backed by the given pool.
func NewPgWaitlistRepository(pool *pgxpool.Pool) *PgWaitlistRepository {
	return &PgWaitlistRepository{pool: pool}
}

var _ WaitlistRepository = (*PgWaitlistRepository)(nil)

// Upsert inserts a waitlist entry. A second signup with the same
// (email, interest) pair overwrites name and company on the existing row
// instead of creating a duplicate. The entry's ID and CreatedAt are
// repopulated from the winning row.
func (r *PgWaitlistRepository) Upsert(ctx context.Context, entry *model.WaitlistEntry) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO waitlist_entries (id, email, name, company, interest)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5)
		 ON CONFLICT (email, interest)
		 DO UPDATE SET name = EXCLUDED.name, company = EXCLUDED.company
		 RETURNING id, created_at`,
		entry.ID, entry.Email, entry.Name, entry.Company, entry.Interest,
	).Scan(&entry.ID, &entry.CreatedAt)
}

// CountRecentByEmail counts waitlist signups from the given email since the
// given time. Same non-transactional caveat as the contact repository.
func (r *PgWaitlistRepository) CountRecentByEmail(ctx context.Context, email string, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM waitlist_entries WHERE email = $1 AND created_at > $2`,
		email, since,
	).Scan(&n)
	return n, err
}

// List returns waitlist entries newest first, paginated by limit/offset.
func (r *PgWaitlistRepository) List(ctx context.Context, opts model.ListOptions) ([]*model.WaitlistEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, COALESCE(name, ''), COALESCE(company, ''), interest, created_at
		 FROM waitlist_entries
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.WaitlistEntry
	for rows.Next() {
		var e model.WaitlistEntry
		if err := rows.Scan(&e.ID, &e.Email, &e.Name, &e.Company, &e.Interest, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
