package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/terroir-ai/backend/internal/model"
)

// BlogRepository defines the persistence interface for blog posts. Only
// published posts are ever exposed; drafts stay invisible to the public API.
type BlogRepository interface {
	ListPublished(ctx context.Context, opts model.ListOptions) ([]*model.BlogPostSummary, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
}

// PgBlogRepository is the PostgreSQL implementation of BlogRepository.
type PgBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPgBlogRepository creates a PgBlogRepository backed by the given pool.
func NewPgBlogRepository(pool *pgxpool.Pool) *PgBlogRepository {
	return &PgBlogRepository{pool: pool}
}

var _ BlogRepository = (*PgBlogRepository)(nil)

// ListPublished returns published post summaries, newest first.
func (r *PgBlogRepository) ListPublished(ctx context.Context, opts model.ListOptions) ([]*model.BlogPostSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, slug, title, COALESCE(subtitle, ''), category, COALESCE(hero_image_url, ''),
		        excerpt, author_name, read_time_minutes, published_at
		 FROM blog_posts
		 WHERE published = true
		 ORDER BY published_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.BlogPostSummary
	for rows.Next() {
		var p model.BlogPostSummary
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Subtitle, &p.Category, &p.HeroImageURL,
			&p.Excerpt, &p.AuthorName, &p.ReadTimeMinutes, &p.PublishedAt); err != nil {
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

// FindPublishedBySlug returns the full published post with the given slug,
// or ErrNotFound. Unpublished rows are treated as absent.
func (r *PgBlogRepository) FindPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var p model.BlogPost
	err := r.pool.QueryRow(ctx,
		`SELECT id, slug, title, COALESCE(subtitle, ''), category, COALESCE(hero_image_url, ''),
		        content_html, excerpt, author_name, read_time_minutes, published,
		        published_at, created_at, updated_at
		 FROM blog_posts
		 WHERE slug = $1 AND published = true`,
		slug,
	).Scan(&p.ID, &p.Slug, &p.Title, &p.Subtitle, &p.Category, &p.HeroImageURL,
		&p.ContentHTML, &p.Excerpt, &p.AuthorName, &p.ReadTimeMinutes, &p.Published,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
