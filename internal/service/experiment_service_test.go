package service

import (
	"context"
	"testing"

	"github.com/terroir-ai/backend/internal/apperr"
	"github.com/terroir-ai/backend/internal/model"
)

type mockExperimentRepository struct {
	listFunc   func(ctx context.Context) ([]*model.Experiment, error)
	createFunc func(ctx context.Context, exp *model.Experiment) error
}

func (m *mockExperimentRepository) List(ctx context.Context) ([]*model.Experiment, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockExperimentRepository) Create(ctx context.Context, exp *model.Experiment) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, exp)
	}
	return nil
}

func TestExperimentService_Create_GeneratesID(t *testing.T) {
	var created *model.Experiment
	repo := &mockExperimentRepository{
		createFunc: func(ctx context.Context, exp *model.Experiment) error {
			created = exp
			return nil
		},
	}
	svc := NewExperimentService(repo)

	exp := &model.Experiment{
		Name:       "hero-copy-v2",
		Hypothesis: "Shorter hero copy lifts signups",
		MetricName: "waitlist_conversion",
	}
	if err := svc.Create(context.Background(), exp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.ID == "" {
		t.Error("expected ID to be generated before insert")
	}
}

func TestExperimentService_Create_RequiredFields(t *testing.T) {
	svc := NewExperimentService(&mockExperimentRepository{})

	cases := []struct {
		exp  model.Experiment
		code string
	}{
		{model.Experiment{Hypothesis: "h", MetricName: "m"}, "name_required"},
		{model.Experiment{Name: "n", MetricName: "m"}, "hypothesis_required"},
		{model.Experiment{Name: "n", Hypothesis: "h"}, "metric_name_required"},
	}
	for _, tc := range cases {
		err := svc.Create(context.Background(), &tc.exp)
		ve, ok := apperr.AsValidation(err)
		if !ok || ve.Code != tc.code {
			t.Errorf("exp %+v: expected %q, got %v", tc.exp, tc.code, err)
		}
	}
}
