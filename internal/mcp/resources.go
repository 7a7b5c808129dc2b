package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/claude/forgefit/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) dailySummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)
	today := models.DateOf(time.Now().UTC())

	p, err := h.ds.GetProgress(ctx, uid)
	if err != nil {
		return nil, err
	}

	entries, err := h.ds.ListSchedule(ctx, uid)
	if err != nil {
		h.log.Warn("daily_summary: schedule query failed", "error", err)
	}

	var todaysEntry *scheduleView
	for _, e := range entries {
		if e.ScheduledDate.SameDay(today) {
			todaysEntry = &scheduleView{ScheduleEntry: e, LockState: h.gateway.LockState(e).String()}
			break
		}
	}

	summary := map[string]any{
		"date":           today.String(),
		"todays_workout": todaysEntry,
		"level":          p.Level,
		"total_xp":       p.TotalXP,
		"streak":         p.Streak,
		"achievements":   p.Achievements,
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) planCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	plans, err := h.ds.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(plans)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
