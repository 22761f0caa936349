// CLAUDE:SUMMARY Entry point for the resumecp MCP server: chi router, shield stack, bearer-gated streamable HTTP MCP endpoint.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/resumecp/auth"
	"github.com/hazyhaar/resumecp/config"
	"github.com/hazyhaar/resumecp/resume"
	"github.com/hazyhaar/resumecp/shield"
)

var version = "dev"

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("dotenv", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load(env("RESUMECP_CONFIG", "resumecp.yaml"))
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	// Logging.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	// Signal context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	handler := newHandler(cfg, logger)

	// HTTP server. No WriteTimeout: MCP event streams stay open.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting",
			"port", cfg.Port,
			"resume_dir", cfg.Resume.Dir,
			"debug_tool", cfg.Debug,
			"token_len", len(cfg.Token),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped")
}

// newHandler wires the pipeline, the MCP server and the HTTP router.
func newHandler(cfg *config.Config, logger *slog.Logger) http.Handler {
	cfg.Resume.Logger = logger
	pipeline := resume.New(cfg.Resume)

	mcpSrv := mcp.NewServer(&mcp.Implementation{
		Name:    "resumecp",
		Version: version,
	}, nil)
	pipeline.RegisterMCP(mcpSrv, resume.ToolOptions{
		Identity: cfg.Identity,
		Debug:    cfg.Debug,
		Token:    cfg.Token,
		Logger:   logger,
	})
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpSrv
	}, nil)
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shield.GetLogger(r.Context()).Debug("mcp", "session_id", r.Header.Get("Mcp-Session-Id"))
		streamable.ServeHTTP(w, r)
	})

	// Router.
	r := chi.NewRouter()
	for _, mw := range shield.DefaultStack() {
		r.Use(mw)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Bearer(cfg.Token, logger))
		r.Handle("/mcp", mcpHandler)
		r.Handle("/mcp/*", mcpHandler)
	})
	return r
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
