package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/terroir-ai/backend/internal/antispam"
	"github.com/terroir-ai/backend/internal/apperr"
	"github.com/terroir-ai/backend/internal/model"
	"github.com/terroir-ai/backend/internal/repository"
)

const (
	// rateLimitWindow is the lookback interval for the per-email
	// submission quota.
	rateLimitWindow = 60 * time.Minute

	// maxSubmissionsPerWindow is the quota inside the window. The count
	// and the insert are separate statements, so concurrent submissions
	// can exceed this by a small margin; that race is accepted.
	maxSubmissionsPerWindow = 3

	// notifyTimeout bounds the detached notification send.
	notifyTimeout = 10 * time.Second
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier Notifier
}

// NewContactService creates a ContactService backed by the given repository
// and notifier.
func NewContactService(repo repository.ContactRepository, notifier Notifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

// Submit runs the contact submission pipeline. Spam is logged and reported
// as apperr.ErrSpamDetected; the handler layer disguises that as success so
// automated submitters cannot tell they were caught.
func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission, sig antispam.Signals) error {
	if res := antispam.Check(sig, time.Now()); res.Spam {
		slog.Info("contact submission classified as spam",
			"reason", res.Reason, "email", sub.Email)
		return apperr.ErrSpamDetected
	}

	if err := validateContact(sub); err != nil {
		return err
	}

	n, err := s.repo.CountRecentByEmail(ctx, sub.Email, time.Now().Add(-rateLimitWindow))
	if err != nil {
		return fmt.Errorf("rate limit check: %w", err)
	}
	if n >= maxSubmissionsPerWindow {
		return apperr.ErrRateLimited
	}

	sub.ID = uuid.NewString()
	if sub.Source == "" {
		sub.Source = "website"
	}
	if err := s.repo.Save(ctx, sub); err != nil {
		return fmt.Errorf("save contact submission: %w", err)
	}

	// Fire-and-forget: the response does not wait on the email, and a
	// delivery failure never reaches the submitter.
	go func(sub model.ContactSubmission) {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.NotifyContact(ctx, &sub); err != nil {
			slog.Error("contact notification failed", "error", err, "email", sub.Email)
		}
	}(*sub)

	return nil
}

// List returns contact submissions for the admin view.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ListOptions) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx, opts)
}
