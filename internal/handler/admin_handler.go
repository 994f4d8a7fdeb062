package handler

import (
	"net/http"

	"github.com/terroir-ai/backend/internal/model"
	"github.com/terroir-ai/backend/internal/service"
)

const (
	adminDefaultLimit = 50
	adminMaxLimit     = 200
)

// AdminHandler serves the token-gated admin read endpoints. Authentication
// happens in the router middleware (pkg/auth); these handlers assume the
// request already passed it.
type AdminHandler struct {
	contactService  service.ContactService
	waitlistService service.WaitlistService
	statsService    service.StatsService
}

// NewAdminHandler creates an AdminHandler with the given services.
func NewAdminHandler(contactService service.ContactService, waitlistService service.WaitlistService, statsService service.StatsService) *AdminHandler {
	return &AdminHandler{
		contactService:  contactService,
		waitlistService: waitlistService,
		statsService:    statsService,
	}
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Snapshot(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// contactListResponse is the JSON response for GET /admin/contacts.
type contactListResponse struct {
	Submissions []*model.ContactSubmission `json:"submissions"`
}

// Contacts handles GET /admin/contacts.
func (h *AdminHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	opts := pageOptions(r, adminDefaultLimit, adminMaxLimit)

	subs, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	// Return [] not null for empty lists
	if subs == nil {
		subs = []*model.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, contactListResponse{Submissions: subs})
}

// waitlistListResponse is the JSON response for GET /admin/waitlist.
type waitlistListResponse struct {
	Entries []*model.WaitlistEntry `json:"entries"`
}

// Waitlist handles GET /admin/waitlist.
func (h *AdminHandler) Waitlist(w http.ResponseWriter, r *http.Request) {
	opts := pageOptions(r, adminDefaultLimit, adminMaxLimit)

	entries, err := h.waitlistService.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if entries == nil {
		entries = []*model.WaitlistEntry{}
	}
	writeJSON(w, http.StatusOK, waitlistListResponse{Entries: entries})
}
