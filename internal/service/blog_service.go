package service

import (
	"context"

	"github.com/terroir-ai/backend/internal/model"
	"github.com/terroir-ai/backend/internal/repository"
)

// BlogService exposes published blog content.
type BlogService interface {
	ListPublished(ctx context.Context, opts model.ListOptions) ([]*model.BlogPostSummary, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
}

type blogServiceImpl struct {
	repo repository.BlogRepository
}

// NewBlogService creates a BlogService backed by the given repository.
func NewBlogService(repo repository.BlogRepository) BlogService {
	return &blogServiceImpl{repo: repo}
}

func (s *blogServiceImpl) ListPublished(ctx context.Context, opts model.ListOptions) ([]*model.BlogPostSummary, error) {
	return s.repo.ListPublished(ctx, opts)
}

// GetBySlug returns the published post with the given slug, or
// repository.ErrNotFound. Unpublished posts are indistinguishable from
// missing ones.
func (s *blogServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	return s.repo.FindPublishedBySlug(ctx, slug)
}
