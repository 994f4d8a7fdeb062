// Package antispam classifies form submissions as automated or legitimate.
// The check is a pure function of the submitted signals and the current time,
// so callers decide what to do with the verdict (the submission pipeline
// discards spam while answering with a normal success response).
package antispam

import "time"

// MinFillTime is the shortest plausible interval between a human loading a
// form and submitting it. Faster submissions are treated as automated.
const MinFillTime = 2 * time.Second

// Signals carries the anti-spam fields sent alongside a form submission.
type Signals struct {
	// Honeypot is the value of a form field invisible to humans. Any
	// non-empty value implies an automated filler.
	Honeypot string

	// FormLoadedAt is the client-reported form load time in epoch
	// milliseconds. Zero means the client did not report it.
	FormLoadedAt int64
}

// Result is the classification verdict.
type Result struct {
	Spam   bool
	Reason string
}

// Check classifies the given signals at time now.
func Check(sig Signals, now time.Time) Result {
	if sig.Honeypot != "" {
		return Result{Spam: true, Reason: "honeypot"}
	}
	if sig.FormLoadedAt != 0 {
		loaded := time.UnixMilli(sig.FormLoadedAt)
		if now.Sub(loaded) < MinFillTime {
			return Result{Spam: true, Reason: "too_fast"}
		}
	}
	return Result{}
}
