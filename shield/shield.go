// Package shield provides the HTTP middleware stack placed in front of the
// MCP endpoint: HEAD handling, security headers, body limits and request
// tracing.
//
// Usage:
//
//	r := chi.NewRouter()
//	for _, mw := range shield.DefaultStack() {
//	    r.Use(mw)
//	}
package shield

import "net/http"

type contextKey string

// LoggerKey is the context key for the per-request structured logger.
const LoggerKey contextKey = "shield_logger"

// MaxRequestBody caps MCP JSON-RPC request bodies.
const MaxRequestBody int64 = 1 << 20

// DefaultStack returns the standard middleware stack.
// Middleware is ordered: HeadToGet → SecurityHeaders → MaxBody → TraceID.
func DefaultStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		HeadToGet(StreamPrefix),
		SecurityHeaders(DefaultHeaders()),
		MaxBody(MaxRequestBody),
		TraceID,
	}
}
