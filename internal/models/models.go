// Package models defines the domain types shared across storage, server,
// and client code.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// Date is a calendar day without a time-of-day component. It marshals as
// YYYY-MM-DD and compares at day granularity in UTC.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(DateFormat) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateFormat) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date{d.AddDate(0, 0, n)}
}

// After/Equal compare at day granularity.
func (d Date) DayAfter(other Date) bool { return d.Time.After(other.Time) }
func (d Date) SameDay(other Date) bool  { return d.Time.Equal(other.Time) }

// Exercise is one step in a workout plan, identified by its position in
// the plan's ordered exercise list. Immutable during a session.
type Exercise struct {
	Name        string `json:"name"`
	Reps        string `json:"reps"`
	Sets        int    `json:"sets"`
	RestSeconds int    `json:"rest_seconds"`
	Icon        string `json:"icon"`
}

// WorkoutPlan is an ordered, non-empty exercise sequence with display
// metadata and the XP awarded on completion.
type WorkoutPlan struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Difficulty      string     `json:"difficulty"`
	Exercises       []Exercise `json:"exercises"`
	TargetMuscles   string     `json:"target_muscles"`
	XPReward        int        `json:"xp_reward"`
	DurationMinutes int        `json:"duration_minutes"`
}

// ScheduleEntry is one calendar day's assignment: a workout or a rest day.
// IsLocked is a server hint only; clients re-derive lock state from the
// scheduled date.
type ScheduleEntry struct {
	ID             uuid.UUID    `json:"id"`
	UserID         int          `json:"-"`
	WorkoutPlanID  uuid.UUID    `json:"workout_plan_id"`
	ScheduledDate  Date         `json:"scheduled_date"`
	DayOfWeek      string       `json:"day_of_week"`
	IsRestDay      bool         `json:"is_rest_day"`
	IsCompleted    bool         `json:"is_completed"`
	IsLocked       bool         `json:"is_locked"`
	WorkoutDetails *WorkoutPlan `json:"workout_details,omitempty"`
}

// WorkoutSessionRecord is a persisted record of one completed workout.
type WorkoutSessionRecord struct {
	ID              uuid.UUID `json:"id"`
	UserID          int       `json:"-"`
	WorkoutPlanID   uuid.UUID `json:"workout_plan_id"`
	Date            time.Time `json:"date"`
	XPEarned        int       `json:"xp_earned"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
}

// Progress is the user's accumulated reward state.
type Progress struct {
	UserID          int        `json:"-"`
	TotalXP         int        `json:"total_xp"`
	Level           int        `json:"level"`
	Streak          int        `json:"streak"`
	LastWorkoutDate *Date      `json:"last_workout_date,omitempty"`
	Achievements    []string   `json:"achievements"`
	UpdatedAt       *time.Time `json:"-"`
}

// CompletionRequest is the payload submitted when a workout finishes.
type CompletionRequest struct {
	WorkoutPlanID   uuid.UUID `json:"workout_plan_id"`
	DurationMinutes int       `json:"duration_minutes"`
}

// CompletionResult reports the rewards earned by one completed workout.
// NewAchievements lists only achievements unlocked by this completion.
type CompletionResult struct {
	XPEarned        int      `json:"xp_earned"`
	NewTotalXP      int      `json:"new_total_xp"`
	NewLevel        int      `json:"new_level"`
	NewStreak       int      `json:"new_streak"`
	NewAchievements []string `json:"new_achievements"`
}

// JourneyStep is a workout plan annotated with its place in the user's
// progression through the catalog. IsNext marks any not-yet-completed
// plan whose predecessor is done (the first plan qualifies outright).
type JourneyStep struct {
	WorkoutPlan
	IsCompleted bool `json:"is_completed"`
	IsNext      bool `json:"is_next"`
	Position    int  `json:"position"`
}

// Achievement is a catalog entry with the user's unlocked flag.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
}

// User is the profile fields the scheduler reads.
type User struct {
	ID              int      `json:"id"`
	Login           string   `json:"login"`
	DisplayName     string   `json:"display_name"`
	ExperienceLevel string   `json:"experience_level"`
	AvailableDays   []string `json:"available_days"`
}
