package model

import "time"

// Experiment is a lightweight A/B experiment record tracking one metric
// against a baseline and target.
type Experiment struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Hypothesis    string     `json:"hypothesis"`
	MetricName    string     `json:"metric_name"`
	BaselineValue *float64   `json:"baseline_value,omitempty"`
	TargetValue   *float64   `json:"target_value,omitempty"`
	CurrentValue  *float64   `json:"current_value,omitempty"`
	Status        string     `json:"status"` // "running" | "concluded"
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
