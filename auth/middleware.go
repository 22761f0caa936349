// Package auth gates HTTP handlers behind an opaque bearer token.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hazyhaar/resumecp/kit"
)

// ClientID is recorded in the request context for authenticated callers.
const ClientID = "resumecp-client"

// Bearer returns an http.Handler middleware that admits only requests whose
// Authorization header carries "Bearer <token>" with token exactly equal to
// expected. Everything else is rejected with 401 before reaching next.
// An empty expected token rejects every request.
//
// Token lengths and the match outcome are logged; token values never are.
func Bearer(expected string, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, present := TokenFromRequest(r)
			match := present && expected != "" &&
				subtle.ConstantTimeCompare([]byte(got), []byte(expected)) == 1

			log := logger.With(
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"token_present", present,
				"received_len", len(got),
				"expected_len", len(expected),
			)
			if !match {
				log.Warn("auth: bearer token rejected")
				w.Header().Set("WWW-Authenticate", `Bearer realm="resumecp"`)
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
				return
			}
			log.Debug("auth: bearer token accepted")

			ctx := kit.WithClientID(r.Context(), ClientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromRequest extracts the bearer token from the Authorization header.
// The scheme is matched case-insensitively.
func TokenFromRequest(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(h[7:])
	return tok, tok != ""
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
