package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/terroir-ai/backend/internal/antispam"
	"github.com/terroir-ai/backend/internal/apperr"
	"github.com/terroir-ai/backend/internal/model"
	"github.com/terroir-ai/backend/internal/service"
)

const waitlistAcceptedMessage = "You're on the list! We'll reach out when your spot is ready."

// WaitlistHandler handles the public waitlist signup endpoint.
type WaitlistHandler struct {
	waitlistService service.WaitlistService
}

// NewWaitlistHandler creates a WaitlistHandler with the given service.
func NewWaitlistHandler(waitlistService service.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{waitlistService: waitlistService}
}

// waitlistRequest is the expected JSON body for POST /waitlist.
type waitlistRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Company      string `json:"company"`
	Interest     string `json:"interest"`
	Website      string `json:"website"`
	FormLoadedAt int64  `json:"_form_loaded_at"`
}

// Signup handles POST /waitlist.
func (h *WaitlistHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req waitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	entry := &model.WaitlistEntry{
		Email:    req.Email,
		Name:     req.Name,
		Company:  req.Company,
		Interest: req.Interest,
	}
	sig := antispam.Signals{Honeypot: req.Website, FormLoadedAt: req.FormLoadedAt}

	err := h.waitlistService.Signup(r.Context(), entry, sig)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, submissionResponse{Success: true, Message: waitlistAcceptedMessage})
	case errors.Is(err, apperr.ErrSpamDetected):
		writeJSON(w, http.StatusOK, submissionResponse{Success: true, Message: spamDisguiseMessage})
	default:
		writeServiceError(w, r, err)
	}
}
