package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/olgasafonova/nuclino-mcp-server/internal/errors"
	"github.com/olgasafonova/nuclino-mcp-server/internal/nuclinomcp"
	"github.com/olgasafonova/nuclino-mcp-server/metrics"
	"github.com/olgasafonova/nuclino-mcp-server/nuclino"
	"github.com/olgasafonova/nuclino-mcp-server/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	service *nuclinomcp.Service
	logger  *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(service *nuclinomcp.Service, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		service: service,
		logger:  logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Directory tools
	case "ListTeams":
		h.register(server, tool, spec, h.service.ListTeamsMCP)
	case "GetTeam":
		h.register(server, tool, spec, h.service.GetTeamMCP)
	case "ListWorkspaces":
		h.register(server, tool, spec, h.service.ListWorkspacesMCP)
	case "GetWorkspace":
		h.register(server, tool, spec, h.service.GetWorkspaceMCP)
	case "FindWorkspace":
		h.register(server, tool, spec, h.service.FindWorkspaceMCP)
	case "GetUser":
		h.register(server, tool, spec, h.service.GetUserMCP)

	// Page tools
	case "GetPage":
		h.register(server, tool, spec, h.service.GetPageMCP)
	case "ListPages":
		h.register(server, tool, spec, h.service.ListPagesMCP)
	case "SearchPages":
		h.register(server, tool, spec, h.service.SearchPagesMCP)
	case "CreatePage":
		h.register(server, tool, spec, h.service.CreatePageMCP)
	case "UpdatePage":
		h.register(server, tool, spec, h.service.UpdatePageMCP)
	case "DeletePage":
		h.register(server, tool, spec, h.service.DeletePageMCP)

	// File tools
	case "GetFile":
		h.register(server, tool, spec, h.service.GetFileMCP)
	case "DownloadFile":
		h.register(server, tool, spec, h.service.DownloadFileMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the service method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (res *mcp.CallToolResult, out Result, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				var zero Result
				res, out, err = nil, zero, h.panicError(spec.Name, rec)
			}
		}()

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		tracing.AddToolAttributes(span, spec.Name, spec.Category)
		span.SetAttributes(
			attribute.String("mcp.tool.resource", spec.Resource),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			tracing.RecordError(span, err)
			span.SetAttributes(attribute.String("mcp.tool.error_kind", errorKind(err)))
			metrics.RecordRequest(spec.Name, duration, false)
			h.logger.Warn("Tool failed", "tool", spec.Name, "error_kind", errorKind(err), "error", err)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// errorKind classifies tool errors for logs and spans.
func errorKind(err error) string {
	switch {
	case apperrors.IsValidation(err):
		return "validation"
	case apperrors.IsNotFound(err):
		return "not_found"
	default:
		return nuclino.ErrorKind(err)
	}
}

// panicError records a recovered tool panic and turns it into the tool's error.
func (h *HandlerRegistry) panicError(toolName string, rec any) error {
	metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
	h.logger.Error("Panic recovered",
		"tool", toolName,
		"panic", rec,
		"stack", string(debug.Stack()))
	return fmt.Errorf("%s panicked: %v", toolName, rec)
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "resource", spec.Resource}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case nuclinomcp.GetUserArgs:
		attrs = append(attrs, "user_id", a.UserID)
	case nuclinomcp.ListTeamsArgs:
		attrs = append(attrs, "limit", a.Limit, "after", a.After)
	case nuclinomcp.GetTeamArgs:
		attrs = append(attrs, "team_id", a.TeamID)
	case nuclinomcp.ListWorkspacesArgs:
		attrs = append(attrs, "limit", a.Limit, "after", a.After)
	case nuclinomcp.GetWorkspaceArgs:
		attrs = append(attrs, "workspace_id", a.WorkspaceID)
	case nuclinomcp.FindWorkspaceArgs:
		attrs = append(attrs, "name", a.Name)
	case nuclinomcp.GetPageArgs:
		attrs = append(attrs, "page_id", a.PageID)
	case nuclinomcp.ListPagesArgs:
		attrs = append(attrs, "team_id", a.TeamID, "workspace_id", a.WorkspaceID, "after", a.After)
	case nuclinomcp.SearchPagesArgs:
		attrs = append(attrs, "query", a.Query)
	case nuclinomcp.CreatePageArgs:
		attrs = append(attrs, "kind", a.Kind, "workspace_id", a.WorkspaceID, "parent_id", a.ParentID)
	case nuclinomcp.UpdatePageArgs:
		attrs = append(attrs, "page_id", a.PageID)
	case nuclinomcp.DeletePageArgs:
		attrs = append(attrs, "page_id", a.PageID)
	case nuclinomcp.GetFileArgs:
		attrs = append(attrs, "file_id", a.FileID)
	case nuclinomcp.DownloadFileArgs:
		attrs = append(attrs, "file_id", a.FileID)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case nuclinomcp.ListTeamsResult:
		attrs = append(attrs, "teams", len(r.Teams), "has_more", r.Next != "")
	case nuclinomcp.ListWorkspacesResult:
		attrs = append(attrs, "workspaces", len(r.Workspaces), "has_more", r.Next != "")
	case nuclinomcp.FindWorkspaceResult:
		attrs = append(attrs, "scanned", r.Scanned)
	case nuclinomcp.ListPagesResult:
		attrs = append(attrs, "pages", len(r.Pages), "has_more", r.Next != "")
	case nuclinomcp.SearchPagesResult:
		attrs = append(attrs, "results_count", len(r.Pages))
	case nuclinomcp.CreatePageResult:
		attrs = append(attrs, "created_id", r.Page.ID)
	case nuclinomcp.DownloadFileResult:
		attrs = append(attrs, "size", r.Size, "encoding", r.Encoding, "truncated", r.Truncated)
	}

	h.logger.Info("Tool executed", attrs...)
}

// Convenience function to call the generic register with method receiver
func (h *HandlerRegistry) register(server *mcp.Server, tool *mcp.Tool, spec ToolSpec, method any) {
	switch m := method.(type) {
	// Directory tools
	case func(context.Context, nuclinomcp.ListTeamsArgs) (nuclinomcp.ListTeamsResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, nuclinomcp.GetTeamArgs) (nuclinomcp.GetTeamResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, nuclinomcp.ListWorkspacesArgs) (nuclinomcp.ListWorkspacesResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, nuclinomcp.GetWorkspaceArgs) (nuclinomcp.GetWorkspaceResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, nuclinomcp.FindWorkspaceArgs) (nuclinomcp.FindWorkspaceResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, nuclinomcp.GetUserArgs) (nuclinomcp.GetUserResult, error):
		register(h, server, tool, spec, m)

	// Page tools
	case func(context.Context, nuclinomcp.GetPageArgs) (nuclinomcp.GetPageResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, nuclinomcp.ListPagesArgs) (nuclinomcp.ListPagesResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, nuclinomcp.SearchPagesArgs) (nuclinomcp.SearchPagesResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, nuclinomcp.CreatePageArgs) (nuclinomcp.CreatePageResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, nuclinomcp.UpdatePageArgs) (nuclinomcp.UpdatePageResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, nuclinomcp.DeletePageArgs) (nuclinomcp.DeletePageResult, error):
		register(h, server, tool, spec, m)

	// File tools
	case func(context.Context, nuclinomcp.GetFileArgs) (nuclinomcp.GetFileResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, nuclinomcp.DownloadFileArgs) (nuclinomcp.DownloadFileResult, error):
		register(h, server, tool, spec, m)

	default:
		h.logger.Error("Unknown method type, tool not registered", "tool", spec.Name)
	}
}
