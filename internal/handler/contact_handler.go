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

const (
	contactAcceptedMessage = "Thank you for reaching out. We'll be in touch shortly."

	// spamDisguiseMessage is the body sent for rejected spam. Shape and
	// status match a genuine acceptance so automated submitters cannot
	// detect that they were caught.
	spamDisguiseMessage = "Thank you! We'll be in touch shortly."
)

// ContactHandler handles the public contact form endpoint.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// contactRequest is the expected JSON body for POST /contact. website is the
// honeypot field; _form_loaded_at is the client-reported form load time in
// epoch milliseconds.
type contactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Company      string `json:"company"`
	Phone        string `json:"phone"`
	Acreage      string `json:"acreage"`
	CropType     string `json:"crop_type"`
	Message      string `json:"message"`
	Source       string `json:"source"`
	Website      string `json:"website"`
	FormLoadedAt int64  `json:"_form_loaded_at"`
}

// Submit handles POST /contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	sub := &model.ContactSubmission{
		Name:     req.Name,
		Email:    req.Email,
		Company:  req.Company,
		Phone:    req.Phone,
		Acreage:  req.Acreage,
		CropType: req.CropType,
		Message:  req.Message,
		Source:   req.Source,
	}
	sig := antispam.Signals{Honeypot: req.Website, FormLoadedAt: req.FormLoadedAt}

	err := h.contactService.Submit(r.Context(), sub, sig)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, submissionResponse{Success: true, Message: contactAcceptedMessage})
	case errors.Is(err, apperr.ErrSpamDetected):
		writeJSON(w, http.StatusOK, submissionResponse{Success: true, Message: spamDisguiseMessage})
	default:
		writeServiceError(w, r, err)
	}
}
