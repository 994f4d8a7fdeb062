package model

import "time"

// ContactSubmission is a message submitted via the contact form. Rows are
// written once and never updated or deleted by the API.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Acreage   string    `json:"acreage,omitempty"`
	CropType  string    `json:"crop_type,omitempty"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// ListOptions carries pagination parameters for admin list endpoints.
type ListOptions struct {
	Limit  int
	Offset int
}
