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

// waitlistServiceImpl is the production implementation of WaitlistService.
type waitlistServiceImpl struct {
	repo     repository.WaitlistRepository
	notifier Notifier
}

// NewWaitlistService creates a WaitlistService backed by the given repository
// and notifier.
func NewWaitlistService(repo repository.WaitlistRepository, notifier Notifier) WaitlistService {
	return &waitlistServiceImpl{repo: repo, notifier: notifier}
}

// Signup runs the waitlist submission pipeline. The rate-limit count runs
// before the upsert, so even updates to one's own entry stay inside the
// quota.
func (s *waitlistServiceImpl) Signup(ctx context.Context, entry *model.WaitlistEntry, sig antispam.Signals) error {
	if res := antispam.Check(sig, time.Now()); res.Spam {
		slog.Info("waitlist signup classified as spam",
			"reason", res.Reason, "email", entry.Email)
		return apperr.ErrSpamDetected
	}

	if err := validateWaitlist(entry); err != nil {
		return err
	}

	n, err := s.repo.CountRecentByEmail(ctx, entry.Email, time.Now().Add(-rateLimitWindow))
	if err != nil {
		return fmt.Errorf("rate limit check: %w", err)
	}
	if n >= maxSubmissionsPerWindow {
		return apperr.ErrRateLimited
	}

	entry.ID = uuid.NewString()
	if entry.Interest == "" {
		entry.Interest = "general"
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("upsert waitlist entry: %w", err)
	}

	go func(entry model.WaitlistEntry) {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.NotifyWaitlist(ctx, &entry); err != nil {
			slog.Error("waitlist notification failed", "error", err, "email", entry.Email)
		}
	}(*entry)

	return nil
}

// List returns waitlist entries for the admin view.
func (s *waitlistServiceImpl) List(ctx context.Context, opts model.ListOptions) ([]*model.WaitlistEntry, error) {
	return s.repo.List(ctx, opts)
}
