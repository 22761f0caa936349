package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hazyhaar/resumecp/kit"
)

func protected(t *testing.T, token string) (http.Handler, *string) {
	t.Helper()
	var client string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client = kit.GetClientID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	return Bearer(token, nil)(next), &client
}

func TestBearer(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"exact match", "Bearer s3cret-token", http.StatusNoContent},
		{"lowercase scheme", "bearer s3cret-token", http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong token", "Bearer s3cret-tokem", http.StatusUnauthorized},
		{"prefix only", "Bearer s3cret", http.StatusUnauthorized},
		{"basic scheme", "Basic s3cret-token", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, client := protected(t, "s3cret-token")
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status: got %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusUnauthorized {
				if rec.Header().Get("WWW-Authenticate") == "" {
					t.Error("expected WWW-Authenticate header")
				}
				if *client != "" {
					t.Error("next handler must not run on rejection")
				}
			} else if *client != ClientID {
				t.Errorf("client id: got %q, want %q", *client, ClientID)
			}
		})
	}
}

func TestBearer_EmptyExpectedRejectsAll(t *testing.T) {
	h, _ := protected(t, "")
	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
}
