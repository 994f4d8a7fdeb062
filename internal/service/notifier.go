package service

import (
	"context"

	"github.com/terroir-ai/backend/internal/model"
)

// Notifier delivers best-effort admin notifications for new submissions.
// Implementations must be safe for concurrent use; callers never act on the
// returned error beyond logging it.
type Notifier interface {
	NotifyContact(ctx context.Context, sub *model.ContactSubmission) error
	NotifyWaitlist(ctx context.Context, entry *model.WaitlistEntry) error
}
