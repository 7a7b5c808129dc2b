package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/forgefit/internal/models"
	"github.com/google/uuid"
)

// InsertSession records one completed workout.
func (db *DB) InsertSession(ctx context.Context, rec models.WorkoutSessionRecord) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO workout_sessions (id, user_id, workout_plan_id, date, xp_earned, duration_minutes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.ID, rec.UserID, rec.WorkoutPlanID, rec.Date, rec.XPEarned, rec.DurationMinutes, rec.Status)
	if err != nil {
		return fmt.Errorf("inserting workout session: %w", err)
	}
	return nil
}

// CountSessions returns the user's lifetime completed workout count.
func (db *DB) CountSessions(ctx context.Context, userID int) (int, error) {
	var count int
	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM workout_sessions WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting sessions: %w", err)
	}
	return count, nil
}

// RecentSessions returns sessions since the given time, newest first.
func (db *DB) RecentSessions(ctx context.Context, userID int, since time.Time) ([]models.WorkoutSessionRecord, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, workout_plan_id, date, xp_earned, duration_minutes, status
		FROM workout_sessions
		WHERE user_id = $1 AND date >= $2
		ORDER BY date DESC
	`, userID, since)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.WorkoutSessionRecord
	for rows.Next() {
		var s models.WorkoutSessionRecord
		if err := rows.Scan(&s.ID, &s.UserID, &s.WorkoutPlanID, &s.Date,
			&s.XPEarned, &s.DurationMinutes, &s.Status); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// CompletedPlanIDs returns the distinct plans the user has completed at
// least one session for.
func (db *DB) CompletedPlanIDs(ctx context.Context, userID int) ([]uuid.UUID, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT DISTINCT workout_plan_id FROM workout_sessions WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying completed plans: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning plan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
