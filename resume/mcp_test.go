package resume

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var testImpl = &mcp.Implementation{Name: "resume-test", Version: "0.1.0"}

func connect(t *testing.T, p *Pipeline, opts ToolOptions) *mcp.ClientSession {
	t.Helper()
	srv := mcp.NewServer(testImpl, nil)
	p.RegisterMCP(srv, opts)

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = srv.Run(ctx, serverT) }()

	session, err := mcp.NewClient(testImpl, nil).Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func callText(t *testing.T, session *mcp.ClientSession, name string) *mcp.CallToolResult {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: map[string]any{}})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	return result
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty content")
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return tc.Text
}

func toolNames(t *testing.T, session *mcp.ClientSession) map[string]bool {
	t.Helper()
	res, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	names := make(map[string]bool)
	for _, tool := range res.Tools {
		names[tool.Name] = true
	}
	return names
}

func TestMCP_Resume(t *testing.T) {
	p := newTestPipeline(t, Config{})
	touch(t, p.Config().Dir, "resume.txt", scenario)
	session := connect(t, p, ToolOptions{Identity: "5550100"})

	result := callText(t, session, "resume")
	if result.IsError {
		t.Fatal("unexpected tool error")
	}
	if got := textOf(t, result); got != scenarioMarkdown {
		t.Fatalf("resume:\n got %q\nwant %q", got, scenarioMarkdown)
	}
}

func TestMCP_ResumeMissingIsDocument(t *testing.T) {
	p := newTestPipeline(t, Config{})
	session := connect(t, p, ToolOptions{})

	result := callText(t, session, "resume")
	if result.IsError {
		t.Fatal("missing resume should be a document, not a tool error")
	}
	if got := textOf(t, result); len(got) < len(ErrorHeading) || got[:len(ErrorHeading)] != ErrorHeading {
		t.Fatalf("resume = %q", got)
	}
}

func TestMCP_Validate(t *testing.T) {
	p := newTestPipeline(t, Config{})
	session := connect(t, p, ToolOptions{Identity: "5550100"})

	if got := textOf(t, callText(t, session, "validate")); got != "5550100" {
		t.Fatalf("validate = %q", got)
	}
}

func TestMCP_DebugGated(t *testing.T) {
	p := newTestPipeline(t, Config{})

	names := toolNames(t, connect(t, p, ToolOptions{Token: "test-token-123"}))
	if !names["resume"] || !names["validate"] {
		t.Fatalf("tools = %v", names)
	}
	if names["debug_info"] {
		t.Fatal("debug_info registered without Debug")
	}

	session := connect(t, p, ToolOptions{Token: "test-token-123", Debug: true})
	got := textOf(t, callText(t, session, "debug_info"))
	want := "Debug server is working! Expected token: test-tok... (length: 14)"
	if got != want {
		t.Fatalf("debug_info = %q, want %q", got, want)
	}
}

func TestDebugInfo_ShortToken(t *testing.T) {
	if got := DebugInfo("abc"); got != "Debug server is working! Expected token: abc... (length: 3)" {
		t.Fatalf("DebugInfo = %q", got)
	}
}
