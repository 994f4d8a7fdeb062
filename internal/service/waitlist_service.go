package service

import (
	"context"

	"github.com/terroir-ai/backend/internal/antispam"
	"github.com/terroir-ai/backend/internal/model"
)

// WaitlistService defines the business logic for waitlist signups.
type WaitlistService interface {
	// Signup runs the same submission pipeline as contact: spam check,
	// validation, rate limit, upsert, async notify. A repeated signup
	// with the same (email, interest) updates the existing row.
	Signup(ctx context.Context, entry *model.WaitlistEntry, sig antispam.Signals) error

	// List returns waitlist entries for the admin view.
	List(ctx context.Context, opts model.ListOptions) ([]*model.WaitlistEntry, error)
}
