package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("missing Content-Security-Policy")
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS("https://terroir.example")(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/contact", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://terroir.example" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
		t.Errorf("Allow-Methods = %q", got)
	}
}

func TestCORS_PassesThrough(t *testing.T) {
	called := false
	h := CORS("https://terroir.example")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/blog", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !called {
		t.Error("expected non-preflight request to reach the handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("expected Allow-Origin on plain requests too")
	}
}

func TestMaxBodyBytes(t *testing.T) {
	var readErr error
	h := MaxBodyBytes(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, readErr = r.Body.Read(buf)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if readErr == nil {
		t.Error("expected read error for oversized body")
	}
}

func TestIPRateLimiter_Blocks(t *testing.T) {
	rl := NewIPRateLimiter(1, 2)
	h := rl.Middleware(okHandler())

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "203.0.113.9:51234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Errorf("expected burst of 2 to pass, got %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("expected third request limited, got %v", statuses)
	}
}

// TestIPRateLimiter_PerIP verifies one client's quota does not affect another.
func TestIPRateLimiter_PerIP(t *testing.T) {
	rl := NewIPRateLimiter(1, 1)
	h := rl.Middleware(okHandler())

	first := httptest.NewRequest(http.MethodPost, "/contact", nil)
	first.RemoteAddr = "203.0.113.9:51234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first client first request: %d", rec.Code)
	}

	other := httptest.NewRequest(http.MethodPost, "/contact", nil)
	other.RemoteAddr = "198.51.100.4:40000"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	if rec.Code != http.StatusOK {
		t.Errorf("second client should have its own bucket, got %d", rec.Code)
	}
}

// TestIPRateLimiter_ForwardedFor verifies the limiter keys on the proxy-added
// X-Forwarded-For entry, not the socket address.
func TestIPRateLimiter_ForwardedFor(t *testing.T) {
	rl := NewIPRateLimiter(1, 1)
	h := rl.Middleware(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.RemoteAddr = "10.0.0.2:443" // proxy
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: %d", rec.Code)
	}

	// Same forwarded client through the same proxy is limited
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected forwarded client limited, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After on 429")
	}
}
