package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/terroir-ai/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
type ContactRepository interface {
	Save(ctx context.Context, sub *model.ContactSubmission) error
	CountRecentByEmail(ctx context.Context, email string, since time.Time) (int, error)
	List(ctx context.Context, opts model.ListOptions) ([]*model.ContactSubmission, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_submissions row and populates sub.CreatedAt from
// the database RETURNING clause. Optional fields are stored as NULL when empty.
func (r *PgContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (id, name, email, company, phone, acreage, crop_type, message, source)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9)
		 RETURNING created_at`,
		sub.ID, sub.Name, sub.Email, sub.Company, sub.Phone, sub.Acreage, sub.CropType,
		sub.Message, sub.Source,
	).Scan(&sub.CreatedAt)
}

// CountRecentByEmail counts submissions from the given email since the given
// time. Used by the rate limiter; the count and the subsequent insert are
// deliberately not one transaction, so concurrent submitters can overshoot
// the limit by a small margin.
func (r *PgContactRepository) CountRecentByEmail(ctx context.Context, email string, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_submissions WHERE email = $1 AND created_at > $2`,
		email, since,
	).Scan(&n)
	return n, err
}

// List returns contact submissions newest first, paginated by limit/offset.
func (r *PgContactRepository) List(ctx context.Context, opts model.ListOptions) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, COALESCE(company, ''), COALESCE(phone, ''),
		        COALESCE(acreage, ''), COALESCE(crop_type, ''), message, source, created_at
		 FROM contact_submissions
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Company, &s.Phone,
			&s.Acreage, &s.CropType, &s.Message, &s.Source, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
