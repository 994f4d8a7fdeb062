package service

import (
	"strings"

	"github.com/terroir-ai/backend/internal/apperr"
	"github.com/terroir-ai/backend/internal/model"
)

const (
	maxNameLength    = 200
	maxEmailLength   = 320
	maxMessageLength = 5000
)

// validateContact enforces the structural constraints on a contact
// submission before it reaches persistence.
func validateContact(sub *model.ContactSubmission) error {
	if strings.TrimSpace(sub.Name) == "" {
		return apperr.Invalid("name_required")
	}
	if len([]rune(sub.Name)) > maxNameLength {
		return apperr.Invalid("name_too_long")
	}
	if err := validateEmail(sub.Email); err != nil {
		return err
	}
	if strings.TrimSpace(sub.Message) == "" {
		return apperr.Invalid("message_required")
	}
	if len([]rune(sub.Message)) > maxMessageLength {
		return apperr.Invalid("message_too_long")
	}
	return nil
}

// validateWaitlist enforces the structural constraints on a waitlist signup.
func validateWaitlist(entry *model.WaitlistEntry) error {
	if err := validateEmail(entry.Email); err != nil {
		return err
	}
	if len([]rune(entry.Name)) > maxNameLength {
		return apperr.Invalid("name_too_long")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return apperr.Invalid("email_required")
	}
	if len(email) > maxEmailLength {
		return apperr.Invalid("email_too_long")
	}
	if !emailShape(email) {
		return apperr.Invalid("email_invalid")
	}
	return nil
}

// emailShape checks the local@domain.tld form. It is intentionally loose:
// deliverability is not our problem, obvious garbage is.
func emailShape(s string) bool {
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
