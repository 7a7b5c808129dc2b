package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/forgefit/internal/models"
	"github.com/jackc/pgx/v5"
)

// GetProgress loads the user's reward state. A user with no recorded
// progress gets the zero state (level 1, empty achievements).
func (db *DB) GetProgress(ctx context.Context, userID int) (models.Progress, error) {
	p := models.Progress{UserID: userID, Level: 1, Achievements: []string{}}

	var lastWorkout *time.Time
	err := db.Pool.QueryRow(ctx, `
		SELECT total_xp, level, streak, last_workout_date, achievements
		FROM progress
		WHERE user_id = $1
	`, userID).Scan(&p.TotalXP, &p.Level, &p.Streak, &lastWorkout, &p.Achievements)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("querying progress: %w", err)
	}
	if lastWorkout != nil {
		d := models.DateOf(*lastWorkout)
		p.LastWorkoutDate = &d
	}
	return p, nil
}

// UpsertProgress writes the user's reward state.
func (db *DB) UpsertProgress(ctx context.Context, p models.Progress) error {
	var lastWorkout *time.Time
	if p.LastWorkoutDate != nil {
		lastWorkout = &p.LastWorkoutDate.Time
	}

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO progress (user_id, total_xp, level, streak, last_workout_date, achievements, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			total_xp = EXCLUDED.total_xp,
			level = EXCLUDED.level,
			streak = EXCLUDED.streak,
			last_workout_date = EXCLUDED.last_workout_date,
			achievements = EXCLUDED.achievements,
			updated_at = NOW()
	`, p.UserID, p.TotalXP, p.Level, p.Streak, lastWorkout, p.Achievements)
	if err != nil {
		return fmt.Errorf("upserting progress: %w", err)
	}
	return nil
}
