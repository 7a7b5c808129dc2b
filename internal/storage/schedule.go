package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/forgefit/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReplaceSchedule wipes the user's schedule and inserts the new entries
// in one transaction, so a failed regeneration never leaves a half-built
// calendar.
func (db *DB) ReplaceSchedule(ctx context.Context, userID int, entries []models.ScheduleEntry) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning schedule transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM scheduled_workouts WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clearing schedule: %w", err)
	}

	for _, e := range entries {
		_, err := tx.Exec(ctx, `
			INSERT INTO scheduled_workouts (id, user_id, workout_plan_id, scheduled_date, day_of_week, is_rest_day, is_completed)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, e.ID, userID, nullablePlanID(e), e.ScheduledDate.Time, e.DayOfWeek, e.IsRestDay, e.IsCompleted)
		if err != nil {
			return fmt.Errorf("inserting schedule entry %s: %w", e.ScheduledDate, err)
		}
	}

	return tx.Commit(ctx)
}

// ListSchedule returns the user's entries ordered by date ascending.
func (db *DB) ListSchedule(ctx context.Context, userID int) ([]models.ScheduleEntry, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, workout_plan_id, scheduled_date, day_of_week, is_rest_day, is_completed
		FROM scheduled_workouts
		WHERE user_id = $1
		ORDER BY scheduled_date ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying schedule: %w", err)
	}
	defer rows.Close()

	var entries []models.ScheduleEntry
	for rows.Next() {
		e, err := scanScheduleEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// GetScheduleEntry retrieves one entry scoped to the user. Returns
// ErrNotFound for unknown or foreign entries.
func (db *DB) GetScheduleEntry(ctx context.Context, userID int, id uuid.UUID) (*models.ScheduleEntry, error) {
	row := db.Pool.QueryRow(ctx, `
		SELECT id, user_id, workout_plan_id, scheduled_date, day_of_week, is_rest_day, is_completed
		FROM scheduled_workouts
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	e, err := scanScheduleEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

// MarkScheduleCompleted flips the completion flag on one entry.
func (db *DB) MarkScheduleCompleted(ctx context.Context, userID int, id uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE scheduled_workouts SET is_completed = TRUE
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return fmt.Errorf("marking schedule entry completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSchedule removes the user's entire schedule. Returns the number
// of entries removed.
func (db *DB) DeleteSchedule(ctx context.Context, userID int) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM scheduled_workouts WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("deleting schedule: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanScheduleEntry(row pgx.Row) (*models.ScheduleEntry, error) {
	var e models.ScheduleEntry
	var planID *uuid.UUID
	var scheduledDate = &e.ScheduledDate.Time

	err := row.Scan(&e.ID, &e.UserID, &planID, scheduledDate, &e.DayOfWeek, &e.IsRestDay, &e.IsCompleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning schedule entry: %w", err)
	}
	e.ScheduledDate = models.DateOf(e.ScheduledDate.Time)
	if planID != nil {
		e.WorkoutPlanID = *planID
	}
	return &e, nil
}

func nullablePlanID(e models.ScheduleEntry) *uuid.UUID {
	if e.IsRestDay || e.WorkoutPlanID == uuid.Nil {
		return nil
	}
	id := e.WorkoutPlanID
	return &id
}
