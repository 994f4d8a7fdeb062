package service

import (
	"context"
	"time"

	"github.com/terroir-ai/backend/internal/model"
	"github.com/terroir-ai/backend/internal/repository"
)

// StatsService serves the aggregate admin dashboard snapshot.
type StatsService interface {
	Snapshot(ctx context.Context) (*model.AdminStats, error)
}

type statsServiceImpl struct {
	repo repository.StatsRepository
}

// NewStatsService creates a StatsService backed by the given repository.
func NewStatsService(repo repository.StatsRepository) StatsService {
	return &statsServiceImpl{repo: repo}
}

func (s *statsServiceImpl) Snapshot(ctx context.Context) (*model.AdminStats, error) {
	return s.repo.Snapshot(ctx, time.Now())
}
