package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/claude/forgefit/internal/models"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

func parseDays(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

// --- Tool definitions ---

var toolGetWorkoutPlans = mcp.NewTool("get_workout_plans",
	mcp.WithDescription("List workout plans with their exercises, difficulty, target muscles, and XP reward."),
	mcp.WithString("difficulty", mcp.Description("Filter by difficulty"), mcp.Enum("Beginner", "Intermediate", "Advanced")),
)

var toolGetWorkoutPlan = mcp.NewTool("get_workout_plan",
	mcp.WithDescription("Get one workout plan by ID, including its full ordered exercise list."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Workout plan UUID")),
)

var toolGetSchedule = mcp.NewTool("get_schedule",
	mcp.WithDescription("Get the user's schedule calendar. Each entry carries a lock_state: locked (future), today, past-incomplete (catch-up), completed (view only), or rest-day."),
)

var toolGetProgress = mcp.NewTool("get_progress",
	mcp.WithDescription("Get the user's progress: total XP, level, current streak, and earned achievements."),
)

var toolGetRecentSessions = mcp.NewTool("get_recent_sessions",
	mcp.WithDescription("List completed workout sessions from the recent past."),
	mcp.WithString("days", mcp.Description("Look-back window in days. Defaults to 14.")),
)

// --- Tool handlers ---

func (h *handlers) getWorkoutPlans(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plans, err := h.ds.ListPlans(ctx)
	if err != nil {
		h.log.Error("mcp get_workout_plans", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	if difficulty := req.GetString("difficulty", ""); difficulty != "" {
		filtered := plans[:0]
		for _, p := range plans {
			if strings.EqualFold(p.Difficulty, difficulty) {
				filtered = append(filtered, p)
			}
		}
		plans = filtered
	}

	result, err := mcp.NewToolResultJSON(plans)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid plan ID: " + err.Error()), nil
	}

	plan, err := h.ds.GetPlan(ctx, id)
	if err != nil {
		h.log.Error("mcp get_workout_plan", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(plan)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// scheduleView is a ScheduleEntry annotated with the derived lock state.
type scheduleView struct {
	models.ScheduleEntry
	LockState string `json:"lock_state"`
}

func (h *handlers) getSchedule(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	entries, err := h.ds.ListSchedule(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_schedule", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	views := make([]scheduleView, len(entries))
	for i, e := range entries {
		views[i] = scheduleView{ScheduleEntry: e, LockState: h.gateway.LockState(e).String()}
	}

	result, err := mcp.NewToolResultJSON(views)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgress(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	p, err := h.ds.GetProgress(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(p)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getRecentSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := 14
	if v := req.GetString("days", ""); v != "" {
		n, err := parseDays(v)
		if err != nil {
			return mcp.NewToolResultError("invalid days: " + err.Error()), nil
		}
		days = n
	}

	uid := UserIDFromContext(ctx)
	since := time.Now().UTC().AddDate(0, 0, -days)

	sessions, err := h.ds.RecentSessions(ctx, uid, since)
	if err != nil {
		h.log.Error("mcp get_recent_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
