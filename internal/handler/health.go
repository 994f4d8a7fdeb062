package handler

import (
	"net/http"

	"github.com/terroir-ai/backend/internal/repository"
)

// Version is the API version reported by the health endpoint.
const Version = "1.0.0"

// HealthHandler reports process liveness and database reachability.
type HealthHandler struct {
	db repository.DB
}

// NewHealthHandler creates a HealthHandler pinging the given database.
func NewHealthHandler(db repository.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// Health handles GET /health. It always answers 200; database trouble shows
// up in the database field so probes can distinguish app from storage issues.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbStatus := "connected"
	if err := h.db.Ping(r.Context()); err != nil {
		dbStatus = "error: " + err.Error()
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Version:  Version,
		Database: dbStatus,
	})
}
