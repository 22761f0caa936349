package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/resumecp/config"
)

const testToken = "s3cret-token"

func testServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	dir := t.TempDir()
	resumeText := "JOHN SMITH\n+91 1234567890\nEXPERIENCE\nSoftware Engineer | Acme Corp\n• Built things"
	if err := os.WriteFile(filepath.Join(dir, "resume.txt"), []byte(resumeText), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Token = testToken
	cfg.Identity = "5550100"
	cfg.Resume.Dir = dir

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(newHandler(cfg, logger))
	t.Cleanup(srv.Close)
	return srv, dir
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || strings.TrimSpace(string(body)) != `{"status":"ok"}` {
		t.Fatalf("health = %d %s", resp.StatusCode, body)
	}
	if resp.Header.Get("X-Trace-ID") == "" {
		t.Error("missing X-Trace-ID")
	}
}

func TestMCP_Unauthorized(t *testing.T) {
	srv, _ := testServer(t)
	for _, header := range []string{"", "Bearer wrong"} {
		req, _ := http.NewRequest(http.MethodPost, srv.URL+"/mcp", strings.NewReader(`{}`))
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("Authorization %q: status %d, want 401", header, resp.StatusCode)
		}
	}
}

type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (b *bearerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("Authorization", "Bearer "+b.token)
	return b.base.RoundTrip(r)
}

func TestMCP_EndToEnd(t *testing.T) {
	srv, _ := testServer(t)
	ctx := context.Background()

	transport := &mcp.StreamableClientTransport{
		Endpoint:   srv.URL + "/mcp",
		HTTPClient: &http.Client{Transport: &bearerTransport{token: testToken, base: http.DefaultTransport}},
	}
	session, err := mcp.NewClient(&mcp.Implementation{Name: "e2e", Version: "0.1.0"}, nil).Connect(ctx, transport, nil)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer session.Close()

	for name, want := range map[string]string{
		"validate": "5550100",
		"resume":   "# JOHN SMITH\n\n**+91 1234567890**\n\n## EXPERIENCE\n\n### Software Engineer | Acme Corp\n\n- Built things",
	} {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: map[string]any{}})
		if err != nil {
			t.Fatalf("CallTool(%s): %v", name, err)
		}
		tc, ok := res.Content[0].(*mcp.TextContent)
		if !ok || tc.Text != want {
			t.Fatalf("%s = %+v, want %q", name, res.Content[0], want)
		}
	}
}
