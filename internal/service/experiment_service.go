package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/terroir-ai/backend/internal/apperr"
	"github.com/terroir-ai/backend/internal/model"
	"github.com/terroir-ai/backend/internal/repository"
)

// ExperimentService manages lightweight A/B experiment records.
type ExperimentService interface {
	List(ctx context.Context) ([]*model.Experiment, error)
	Create(ctx context.Context, exp *model.Experiment) error
}

type experimentServiceImpl struct {
	repo repository.ExperimentRepository
}

// NewExperimentService creates an ExperimentService backed by the given repository.
func NewExperimentService(repo repository.ExperimentRepository) ExperimentService {
	return &experimentServiceImpl{repo: repo}
}

func (s *experimentServiceImpl) List(ctx context.Context) ([]*model.Experiment, error) {
	return s.repo.List(ctx)
}

// Create validates required fields and inserts the experiment. Status and
// start time come from database defaults.
func (s *experimentServiceImpl) Create(ctx context.Context, exp *model.Experiment) error {
	if strings.TrimSpace(exp.Name) == "" {
		return apperr.Invalid("name_required")
	}
	if strings.TrimSpace(exp.Hypothesis) == "" {
		return apperr.Invalid("hypothesis_required")
	}
	if strings.TrimSpace(exp.MetricName) == "" {
		return apperr.Invalid("metric_name_required")
	}
	exp.ID = uuid.NewString()
	return s.repo.Create(ctx, exp)
}
