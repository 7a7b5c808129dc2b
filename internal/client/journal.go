package client

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/claude/forgefit/internal/models"
)

// Journal tracks which schedule entries have already been submitted so a
// crashed or rerun session does not double-credit a workout.
type Journal struct {
	db *sql.DB
}

// OpenJournal opens (or creates) the SQLite journal database at dir/journal.db.
func OpenJournal(dir string) (*Journal, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating journal dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "journal.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS submitted_workouts (
		entry_id         TEXT PRIMARY KEY,
		completed_on     TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		xp_earned        INTEGER NOT NULL,
		submitted_at     TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating journal table: %w", err)
	}

	return &Journal{db: db}, nil
}

// IsSubmitted checks if a schedule entry has already been reported.
func (j *Journal) IsSubmitted(entryID string) (bool, error) {
	var count int
	err := j.db.QueryRow(
		`SELECT COUNT(*) FROM submitted_workouts WHERE entry_id = ?`,
		entryID,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkSubmitted records that a schedule entry was successfully reported.
func (j *Journal) MarkSubmitted(entryID string, completedOn models.Date, durationMinutes, xpEarned int) error {
	_, err := j.db.Exec(
		`INSERT OR REPLACE INTO submitted_workouts (entry_id, completed_on, duration_minutes, xp_earned) VALUES (?, ?, ?, ?)`,
		entryID, completedOn.String(), durationMinutes, xpEarned,
	)
	return err
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}
