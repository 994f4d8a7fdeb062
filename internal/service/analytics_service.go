package service

import (
	"context"
	"encoding/json"

	"github.com/terroir-ai/backend/internal/apperr"
	"github.com/terroir-ai/backend/internal/model"
	"github.com/terroir-ai/backend/internal/repository"
)

// AnalyticsService records pageviews and interaction events.
type AnalyticsService interface {
	RecordPageView(ctx context.Context, pv *model.PageView) error
	RecordEvent(ctx context.Context, ev *model.Event) error
}

type analyticsServiceImpl struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsService creates an AnalyticsService backed by the given repository.
func NewAnalyticsService(repo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsServiceImpl{repo: repo}
}

// RecordPageView validates identifiers and appends the pageview.
func (s *analyticsServiceImpl) RecordPageView(ctx context.Context, pv *model.PageView) error {
	if pv.SessionID == "" {
		return apperr.Invalid("session_id_required")
	}
	if pv.VisitorID == "" {
		return apperr.Invalid("visitor_id_required")
	}
	if pv.Path == "" {
		return apperr.Invalid("path_required")
	}
	return s.repo.InsertPageView(ctx, pv)
}

// RecordEvent validates identifiers, applies defaults and appends the event.
func (s *analyticsServiceImpl) RecordEvent(ctx context.Context, ev *model.Event) error {
	if ev.SessionID == "" {
		return apperr.Invalid("session_id_required")
	}
	if ev.VisitorID == "" {
		return apperr.Invalid("visitor_id_required")
	}
	if ev.EventName == "" {
		return apperr.Invalid("event_name_required")
	}
	if ev.EventCategory == "" {
		ev.EventCategory = "interaction"
	}
	if len(ev.Properties) == 0 {
		ev.Properties = json.RawMessage("{}")
	}
	return s.repo.InsertEvent(ctx, ev)
}
