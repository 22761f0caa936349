package shield

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hazyhaar/resumecp/idgen"
	"github.com/hazyhaar/resumecp/kit"
)

var newTraceID = idgen.Prefixed("trc_", idgen.NanoID(12))

// TraceID generates a trace ID for each request and injects it into the
// context, response headers, and a per-request structured logger.
// A valid UUID in X-Request-ID is kept as the request ID, otherwise a new
// one is generated.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := newTraceID()
		requestID, err := idgen.Parse(r.Header.Get("X-Request-ID"))
		if err != nil {
			requestID = idgen.New()
		}

		ctx := kit.WithTraceID(r.Context(), traceID)
		ctx = kit.WithRequestID(ctx, requestID)
		w.Header().Set("X-Trace-ID", traceID)
		w.Header().Set("X-Request-ID", requestID)

		logger := slog.Default().With(
			"trace_id", traceID,
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)
		ctx = context.WithValue(ctx, LoggerKey, logger)
		logger.Info("request")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetLogger retrieves the per-request logger from the context.
// Returns slog.Default() if no logger was set.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(LoggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
