package model

import "time"

// BlogPost is a full blog article as served on the detail endpoint.
type BlogPost struct {
	ID              string     `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Subtitle        string     `json:"subtitle,omitempty"`
	Category        string     `json:"category"`
	HeroImageURL    string     `json:"hero_image_url,omitempty"`
	ContentHTML     string     `json:"content_html"`
	Excerpt         string     `json:"excerpt"`
	AuthorName      string     `json:"author_name"`
	ReadTimeMinutes int        `json:"read_time_minutes"`
	Published       bool       `json:"published"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// BlogPostSummary is the list projection of a post, without the body.
type BlogPostSummary struct {
	ID              string     `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Subtitle        string     `json:"subtitle,omitempty"`
	Category        string     `json:"category"`
	HeroImageURL    string     `json:"hero_image_url,omitempty"`
	Excerpt         string     `json:"excerpt"`
	AuthorName      string     `json:"author_name"`
	ReadTimeMinutes int        `json:"read_time_minutes"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
}
