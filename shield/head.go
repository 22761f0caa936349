package shield

import (
	"net/http"
	"strings"
)

// StreamPrefix is the path prefix of the streamable MCP endpoint.
const StreamPrefix = "/mcp"

// HeadToGet lets GET routes answer HEAD requests. Paths under a skip prefix
// keep HEAD, since a GET there opens an event stream.
func HeadToGet(skip ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead && !underAny(r.URL.Path, skip) {
				r.Method = http.MethodGet
			}
			next.ServeHTTP(w, r)
		})
	}
}

func underAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, strings.TrimSuffix(p, "/")+"/") {
			return true
		}
	}
	return false
}
