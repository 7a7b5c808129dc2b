package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/forgefit/internal/clock"
	"github.com/claude/forgefit/internal/schedule"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("ForgeFit", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("ForgeFit workout server. Query workout plans, the schedule calendar with lock states, progress, and recent sessions. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, gateway: schedule.New(clock.System{}), log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkoutPlans, Handler: h.getWorkoutPlans},
		server.ServerTool{Tool: toolGetWorkoutPlan, Handler: h.getWorkoutPlan},
		server.ServerTool{Tool: toolGetSchedule, Handler: h.getSchedule},
		server.ServerTool{Tool: toolGetProgress, Handler: h.getProgress},
		server.ServerTool{Tool: toolGetRecentSessions, Handler: h.getRecentSessions},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resDailySummary, Handler: h.dailySummary},
		server.ServerResource{Resource: resPlanCatalog, Handler: h.planCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds      DataSource
	gateway *schedule.Gateway
	log     *slog.Logger
}

// --- Resource definitions ---

var resDailySummary = mcp.NewResource(
	"forgefit://daily_summary",
	"Daily Summary",
	mcp.WithResourceDescription("Today's scheduled workout, current streak, level, and XP"),
	mcp.WithMIMEType("application/json"),
)

var resPlanCatalog = mcp.NewResource(
	"forgefit://plan_catalog",
	"Plan Catalog",
	mcp.WithResourceDescription("All workout plans with exercises, difficulty, and XP rewards"),
	mcp.WithMIMEType("application/json"),
)
