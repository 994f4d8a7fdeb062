package model

import "encoding/json"

// PageView is a single recorded page impression.
type PageView struct {
	SessionID   string `json:"session_id"`
	VisitorID   string `json:"visitor_id"`
	Path        string `json:"path"`
	Referrer    string `json:"referrer,omitempty"`
	UTMSource   string `json:"utm_source,omitempty"`
	UTMMedium   string `json:"utm_medium,omitempty"`
	UTMCampaign string `json:"utm_campaign,omitempty"`
	UTMTerm     string `json:"utm_term,omitempty"`
	UTMContent  string `json:"utm_content,omitempty"`
	ScreenWidth *int   `json:"screen_width,omitempty"`
}

// Event is a recorded interaction event.
type Event struct {
	SessionID     string          `json:"session_id"`
	VisitorID     string          `json:"visitor_id"`
	EventName     string          `json:"event_name"`
	EventCategory string          `json:"event_category"`
	EventLabel    string          `json:"event_label,omitempty"`
	EventValue    *float64        `json:"event_value,omitempty"`
	Properties    json.RawMessage `json:"properties,omitempty"`
	Path          string          `json:"path,omitempty"`
}
