package handler

import (
	"encoding/json"
	"net/http"

	"github.com/terroir-ai/backend/internal/model"
	"github.com/terroir-ai/backend/internal/service"
)

// AnalyticsHandler records pageviews and events. Both endpoints are
// fire-and-forget from the client's perspective; they answer {"ok": true}
// once the row is written.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler with the given service.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// PageView handles POST /analytics/pageview.
func (h *AnalyticsHandler) PageView(w http.ResponseWriter, r *http.Request) {
	var pv model.PageView
	if err := json.NewDecoder(r.Body).Decode(&pv); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := h.analyticsService.RecordPageView(r.Context(), &pv); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Event handles POST /analytics/event.
func (h *AnalyticsHandler) Event(w http.ResponseWriter, r *http.Request) {
	var ev model.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := h.analyticsService.RecordEvent(r.Context(), &ev); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
