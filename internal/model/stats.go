package model

// AdminStats is the aggregate snapshot served on the admin dashboard.
type AdminStats struct {
	Contacts  CountStats `json:"contacts"`
	Waitlist  CountStats `json:"waitlist"`
	PageViews CountStats `json:"page_views"`
	Events    CountStats `json:"events"`
}

// CountStats holds total and recent-window counts for one table.
type CountStats struct {
	Total  int64 `json:"total"`
	Last24 int64 `json:"last_24h"`
	Last7d int64 `json:"last_7d"`
}
