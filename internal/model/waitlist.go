package model

import "time"

// WaitlistEntry is a pilot/waitlist signup. (Email, Interest) is unique:
// signing up again with the same pair overwrites name and company instead of
// creating a second row.
type WaitlistEntry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Company   string    `json:"company,omitempty"`
	Interest  string    `json:"interest"`
	CreatedAt time.Time `json:"created_at"`
}
