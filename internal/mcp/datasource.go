package mcp

import (
	"context"
	"time"

	"github.com/claude/forgefit/internal/models"
	"github.com/claude/forgefit/internal/storage"
	"github.com/google/uuid"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB (local)
// and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ListPlans(ctx context.Context) ([]models.WorkoutPlan, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*models.WorkoutPlan, error)
	ListSchedule(ctx context.Context, userID int) ([]models.ScheduleEntry, error)
	GetProgress(ctx context.Context, userID int) (models.Progress, error)
	RecentSessions(ctx context.Context, userID int, since time.Time) ([]models.WorkoutSessionRecord, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
