// Package apperr defines the error taxonomy shared between services and the
// HTTP layer. Services return these; the handler package owns the mapping to
// status codes, including the deliberate downgrade of ErrSpamDetected to a
// success response.
package apperr

import "errors"

var (
	// ErrUnauthorized is returned for any failed admin-token check. The
	// same value is used for missing, malformed and mismatched tokens so
	// callers learn nothing about which check failed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited is returned when a submitter exceeds the per-email
	// submission quota inside the lookback window.
	ErrRateLimited = errors.New("too many submissions")

	// ErrSpamDetected marks a submission classified as automated. It must
	// never reach the client as an error: the response layer disguises it
	// as a normal success so senders get no detection oracle.
	ErrSpamDetected = errors.New("spam detected")
)

// ValidationError reports a violated structural constraint on a write
// payload. Code is a stable snake_case identifier suitable for clients.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Code
}

// Invalid builds a ValidationError with the given constraint code.
func Invalid(code string) error {
	return &ValidationError{Code: code}
}

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
