package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/terroir-ai/backend/internal/apperr"
	"github.com/terroir-ai/backend/internal/model"
	"github.com/terroir-ai/backend/internal/repository"
)

// submissionResponse is the success shape shared by the public write
// endpoints. Spam rejections reuse it verbatim so they are indistinguishable
// from acceptances.
type submissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeServiceError maps a service error to a response. Callers handling
// submissions must special-case apperr.ErrSpamDetected before calling this;
// everything else dispatches on the taxonomy. Storage and unknown errors are
// logged in full and surfaced only as a generic internal error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := apperr.AsValidation(err); ok {
		writeError(w, http.StatusBadRequest, ve.Code)
		return
	}
	switch {
	case errors.Is(err, apperr.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "too_many_requests")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, apperr.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		slog.Error("request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}

// pageOptions parses limit/offset query params with an endpoint default and
// maximum. Non-positive or unparsable values fall back to the default.
func pageOptions(r *http.Request, defaultLimit, maxLimit int) model.ListOptions {
	opts := model.ListOptions{Limit: defaultLimit}

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			opts.Limit = n
		}
	}
	if opts.Limit > maxLimit {
		opts.Limit = maxLimit
	}

	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}
	return opts
}
