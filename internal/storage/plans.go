package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/claude/forgefit/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InsertPlan inserts a workout plan. Exercises are stored as JSONB in the
// plan's declared order. Returns true if inserted, false if duplicate.
func (db *DB) InsertPlan(ctx context.Context, plan models.WorkoutPlan) (bool, error) {
	exercises, err := json.Marshal(plan.Exercises)
	if err != nil {
		return false, fmt.Errorf("marshaling exercises: %w", err)
	}

	tag, err := db.Pool.Exec(ctx, `
		INSERT INTO workout_plans (id, name, difficulty, exercises, target_muscles, xp_reward, duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT DO NOTHING
	`, plan.ID, plan.Name, plan.Difficulty, exercises, plan.TargetMuscles, plan.XPReward, plan.DurationMinutes)
	if err != nil {
		return false, fmt.Errorf("inserting plan: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListPlans returns the full catalog in name order.
func (db *DB) ListPlans(ctx context.Context) ([]models.WorkoutPlan, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, difficulty, exercises, target_muscles, xp_reward, duration_minutes
		FROM workout_plans
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var plans []models.WorkoutPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, rows.Err()
}

// GetPlan retrieves a single plan by ID. Returns ErrNotFound when the
// identifier has no matching definition.
func (db *DB) GetPlan(ctx context.Context, id uuid.UUID) (*models.WorkoutPlan, error) {
	row := db.Pool.QueryRow(ctx, `
		SELECT id, name, difficulty, exercises, target_muscles, xp_reward, duration_minutes
		FROM workout_plans
		WHERE id = $1
	`, id)

	plan, err := scanPlan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return plan, err
}

// CountPlans reports the catalog size, used for idempotent seeding.
func (db *DB) CountPlans(ctx context.Context) (int64, error) {
	var count int64
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM workout_plans`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting plans: %w", err)
	}
	return count, nil
}

func scanPlan(row pgx.Row) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	var exercises []byte
	err := row.Scan(&plan.ID, &plan.Name, &plan.Difficulty, &exercises,
		&plan.TargetMuscles, &plan.XPReward, &plan.DurationMinutes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	if err := json.Unmarshal(exercises, &plan.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshaling exercises: %w", err)
	}
	return &plan, nil
}
