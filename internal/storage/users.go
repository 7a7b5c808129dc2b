package storage

import (
	"context"
	"fmt"

	"github.com/claude/forgefit/internal/models"
)

// GetOrCreateUser finds or creates a user by Tailscale login name.
// Returns the user ID. Updates last_seen and display_name on each call.
func (db *DB) GetOrCreateUser(ctx context.Context, login, displayName string) (int, error) {
	var id int
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO users (login, display_name)
		VALUES ($1, $2)
		ON CONFLICT (login) DO UPDATE
			SET last_seen = NOW(), display_name = COALESCE(NULLIF($2, ''), users.display_name)
		RETURNING id
	`, login, displayName).Scan(&id)
	return id, err
}

// GetUser loads the profile fields the scheduler reads.
func (db *DB) GetUser(ctx context.Context, userID int) (*models.User, error) {
	var u models.User
	err := db.Pool.QueryRow(ctx, `
		SELECT id, login, display_name, COALESCE(experience_level, ''), COALESCE(available_days, '{}')
		FROM users WHERE id = $1
	`, userID).Scan(&u.ID, &u.Login, &u.DisplayName, &u.ExperienceLevel, &u.AvailableDays)
	if err != nil {
		return nil, fmt.Errorf("querying user %d: %w", userID, err)
	}
	return &u, nil
}

// UpdateUserProfile sets the scheduling preferences.
func (db *DB) UpdateUserProfile(ctx context.Context, userID int, experienceLevel string, availableDays []string) error {
	_, err := db.Pool.Exec(ctx, `
		UPDATE users SET experience_level = $2, available_days = $3 WHERE id = $1
	`, userID, experienceLevel, availableDays)
	if err != nil {
		return fmt.Errorf("updating user %d profile: %w", userID, err)
	}
	return nil
}
