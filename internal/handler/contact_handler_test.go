package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/terroir-ai/backend/internal/antispam"
	"github.com/terroir-ai/backend/internal/apperr"
	"github.com/terroir-ai/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, sub *model.ContactSubmission, sig antispam.Signals) error
	listFunc   func(ctx context.Context, opts model.ListOptions) ([]*model.ContactSubmission, error)
}

func (m *mockContactService) Submit(ctx context.Context, sub *model.ContactSubmission, sig antispam.Signals) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, sub, sig)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context, opts model.ListOptions) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func postJSON(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// POST /contact
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured *model.ContactSubmission
	var sigSeen antispam.Signals
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, sub *model.ContactSubmission, sig antispam.Signals) error {
			captured = sub
			sigSeen = sig
			return nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Alice","email":"alice@farm.example","message":"Hello!","crop_type":"grapes","_form_loaded_at":1700000000000}`
	rec := postJSON(t, h.Submit, "/contact", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}

	var resp submissionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Message == "" {
		t.Error("expected a human-readable message")
	}

	if captured == nil {
		t.Fatal("expected Submit to be called")
	}
	if captured.CropType != "grapes" {
		t.Errorf("expected crop_type forwarded, got %q", captured.CropType)
	}
	if sigSeen.FormLoadedAt != 1700000000000 {
		t.Errorf("expected form load timestamp forwarded, got %d", sigSeen.FormLoadedAt)
	}
}

// TestContactHandler_Submit_SpamDisguisedAsSuccess verifies the spam path is
// externally indistinguishable from an acceptance.
func TestContactHandler_Submit_SpamDisguisedAsSuccess(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, sub *model.ContactSubmission, sig antispam.Signals) error {
			return apperr.ErrSpamDetected
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Bot","email":"bot@spam.example","message":"buy stuff","website":"http://spam.example"}`
	rec := postJSON(t, h.Submit, "/contact", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for disguised spam, got %d", rec.Code)
	}

	var resp submissionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("spam response must carry success=true")
	}
	if resp.Message == "" {
		t.Error("spam response must carry the same shape as a genuine acceptance")
	}
}

func TestContactHandler_Submit_HoneypotForwarded(t *testing.T) {
	var sigSeen antispam.Signals
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, sub *model.ContactSubmission, sig antispam.Signals) error {
			sigSeen = sig
			return nil
		},
	}
	h := NewContactHandler(mock)

	postJSON(t, h.Submit, "/contact", `{"name":"A","email":"a@b.co","message":"m","website":"trap"}`)
	if sigSeen.Honeypot != "trap" {
		t.Errorf("expected honeypot value forwarded, got %q", sigSeen.Honeypot)
	}
}

func TestContactHandler_Submit_ValidationFailure(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, sub *model.ContactSubmission, sig antispam.Signals) error {
			return apperr.Invalid("message_required")
		},
	}
	h := NewContactHandler(mock)

	rec := postJSON(t, h.Submit, "/contact", `{"name":"A","email":"a@b.co"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "message_required" {
		t.Errorf("expected error=message_required, got %q", resp["error"])
	}
}

func TestContactHandler_Submit_RateLimited(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, sub *model.ContactSubmission, sig antispam.Signals) error {
			return apperr.ErrRateLimited
		},
	}
	h := NewContactHandler(mock)

	rec := postJSON(t, h.Submit, "/contact", `{"name":"A","email":"a@b.co","message":"m"}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "too_many_requests" {
		t.Errorf("expected error=too_many_requests, got %q", resp["error"])
	}
}

// TestContactHandler_Submit_StorageErrorIsGeneric verifies internal detail
// never reaches the client.
func TestContactHandler_Submit_StorageErrorIsGeneric(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, sub *model.ContactSubmission, sig antispam.Signals) error {
			return errors.New("pq: connection refused on 10.0.0.5")
		},
	}
	h := NewContactHandler(mock)

	rec := postJSON(t, h.Submit, "/contact", `{"name":"A","email":"a@b.co","message":"m"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Error("storage detail must not leak to the client")
	}

	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "internal_error" {
		t.Errorf("expected error=internal_error, got %q", resp["error"])
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	rec := postJSON(t, h.Submit, "/contact", "{bad json")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}
