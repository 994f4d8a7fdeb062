package service

import (
	"context"

	"github.com/terroir-ai/backend/internal/antispam"
	"github.com/terroir-ai/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit runs the submission pipeline: spam check, validation, rate
	// limit, persist, async notify. On success sub.ID and sub.CreatedAt
	// are populated. Returns apperr.ErrSpamDetected, a ValidationError,
	// apperr.ErrRateLimited, or a storage error.
	Submit(ctx context.Context, sub *model.ContactSubmission, sig antispam.Signals) error

	// List returns contact submissions for the admin view.
	List(ctx context.Context, opts model.ListOptions) ([]*model.ContactSubmission, error)
}
