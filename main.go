// Nuclino MCP Server - A Model Context Protocol server for the Nuclino wiki
// Provides tools for browsing, searching, and editing Nuclino workspaces
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/olgasafonova/nuclino-mcp-server/internal/nuclinomcp"
	"github.com/olgasafonova/nuclino-mcp-server/nuclino"
	"github.com/olgasafonova/nuclino-mcp-server/tools"
	"github.com/olgasafonova/nuclino-mcp-server/tracing"
)

// recoverPanic wraps a function with panic recovery and returns an error instead of crashing
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

const (
	ServerName    = "nuclino-mcp-server"
	ServerVersion = "1.0.0"

	// EnvMetricsAddr enables the Prometheus /metrics listener when set.
	EnvMetricsAddr = "NUCLINO_METRICS_ADDR"
)

const instructions = `Nuclino MCP Server provides tools for reading and editing a Nuclino wiki.

Pages are either items (markdown content) or collections (ordered lists of pages).
Workspaces belong to teams; list tools return a next cursor to pass as after.

Available tools:
- nuclino_list_teams, nuclino_get_team: Teams the API key can access
- nuclino_list_workspaces, nuclino_get_workspace, nuclino_find_workspace: Workspaces and their fields
- nuclino_get_user: Resolve a created_by / updated_by id
- nuclino_get_page: Read an item or collection
- nuclino_list_pages: Browse pages of a team or workspace
- nuclino_search_pages: Full-text search
- nuclino_create_page, nuclino_update_page, nuclino_delete_page: Edit the wiki
- nuclino_get_file, nuclino_download_file: Attachments

Configure via environment variables:
- NUCLINO_API_KEY: API key (required)
- NUCLINO_BASE_URL: API base URL (default https://api.nuclino.com)
- NUCLINO_TIMEOUT: Request timeout (default 30s)`

func main() {
	httpAddr := flag.String("http", "", "Serve MCP over streamable HTTP on this address instead of stdio (e.g. :8080)")
	rateLimit := flag.Int("rate-limit", 60, "Max HTTP requests per minute per client IP (0 disables)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", ServerName, ServerVersion)
		return
	}

	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment
	config, err := nuclino.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	traceConfig, err := tracing.ConfigFromEnv(ServerVersion)
	if err != nil {
		log.Fatalf("Invalid tracing configuration: %v", err)
	}
	shutdownTracing, err := tracing.Setup(ctx, traceConfig)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	if addr := os.Getenv(EnvMetricsAddr); addr != "" {
		go serveMetrics(addr, logger)
	}

	client, err := nuclino.NewClientFromConfig(config, nuclino.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create Nuclino client: %v", err)
	}

	server := newServer(nuclinomcp.NewService(client, logger), logger)

	logger.Info("Starting Nuclino MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"base_url", config.BaseURL,
	)

	if *httpAddr != "" {
		err = serveHTTP(ctx, server, *httpAddr, *rateLimit, logger)
	} else {
		err = server.Run(ctx, &mcp.StdioTransport{})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

// newServer creates the MCP server with every tool registered.
func newServer(service *nuclinomcp.Service, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: instructions,
	})

	tools.NewHandlerRegistry(service, logger).RegisterAll(server)
	return server
}

// serveHTTP exposes the server over streamable HTTP behind the security middleware.
func serveHTTP(ctx context.Context, server *mcp.Server, addr string, rateLimit int, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)
	secured := NewSecurityMiddleware(handler, logger, SecurityConfig{
		RateLimit:   rateLimit,
		MaxBodySize: DefaultMaxBodySize,
		AuthToken:   os.Getenv(EnvAuthToken),
	})
	defer secured.Close()

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           secured,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer recoverPanic(logger, "http server")
		logger.Info("Listening for MCP over HTTP", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// serveMetrics runs the Prometheus scrape endpoint until the process exits.
func serveMetrics(addr string, logger *slog.Logger) {
	defer recoverPanic(logger, "metrics server")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("Serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Metrics server stopped", "error", err)
	}
}
