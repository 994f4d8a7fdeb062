// Package auth gates the admin endpoints behind a static bearer token.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

// RequireAdminToken returns middleware enforcing `Authorization: Bearer
// <token>`. Every failure — missing header, malformed header, wrong token,
// or no token configured at all — answers an identical 401 so callers learn
// nothing about which check failed. The comparison is constant time.
func RequireAdminToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" || !tokenMatches(r.Header.Get("Authorization"), token) {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tokenMatches(header, token string) bool {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return false
	}
	presented := header[len(prefix):]
	return subtle.ConstantTimeCompare([]byte(presented), []byte(token)) == 1
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
