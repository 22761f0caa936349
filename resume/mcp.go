package resume

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/resumecp/kit"
)

// ToolOptions configures the non-resume tools exposed next to "resume".
type ToolOptions struct {
	// Identity is returned verbatim by the "validate" tool.
	Identity string

	// Debug registers the "debug_info" tool.
	Debug bool

	// Token is only used to build the debug_info hint (prefix and length).
	Token string

	Logger *slog.Logger
}

// RegisterMCP registers the resume tools on an MCP server.
func (p *Pipeline) RegisterMCP(srv *mcp.Server, opts ToolOptions) {
	if opts.Logger == nil {
		opts.Logger = p.logger
	}
	p.registerResumeTool(srv, opts.Logger)
	registerValidateTool(srv, opts.Identity, opts.Logger)
	if opts.Debug {
		registerDebugTool(srv, opts.Token, opts.Logger)
	}
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// --- resume ---

func (p *Pipeline) registerResumeTool(srv *mcp.Server, logger *slog.Logger) {
	tool := &mcp.Tool{
		Name:        "resume",
		Description: "Return the owner's resume as markdown.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	endpoint := func(ctx context.Context, _ any) (any, error) {
		return p.Resume(ctx), nil
	}

	kit.RegisterMCPTool(srv, tool, kit.Chain(kit.Logging(logger, tool.Name))(endpoint), kit.NoArgs)
}

// --- validate ---

func registerValidateTool(srv *mcp.Server, identity string, logger *slog.Logger) {
	tool := &mcp.Tool{
		Name:        "validate",
		Description: "Return the owner's phone number for validation.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	endpoint := func(_ context.Context, _ any) (any, error) {
		return identity, nil
	}

	kit.RegisterMCPTool(srv, tool, kit.Chain(kit.Logging(logger, tool.Name))(endpoint), kit.NoArgs)
}

// --- debug_info ---

func registerDebugTool(srv *mcp.Server, token string, logger *slog.Logger) {
	tool := &mcp.Tool{
		Name:        "debug_info",
		Description: "Return debug information about the server.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	endpoint := func(_ context.Context, _ any) (any, error) {
		return DebugInfo(token), nil
	}

	kit.RegisterMCPTool(srv, tool, kit.Chain(kit.Logging(logger, tool.Name))(endpoint), kit.NoArgs)
}

// DebugInfo returns the debug_info tool text. Only the first eight token
// characters are revealed.
func DebugInfo(token string) string {
	prefix := token
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("Debug server is working! Expected token: %s... (length: %d)", prefix, len(token))
}
