// Package planner generates a user's four-week workout schedule from
// their availability and experience level.
package planner

import (
	"errors"
	"slices"

	"github.com/claude/forgefit/internal/models"
	"github.com/google/uuid"
)

// ScheduleWeeks is how far ahead a generated schedule reaches.
const ScheduleWeeks = 4

// ErrNoAvailableDays rejects generation for a user with no availability set.
var ErrNoAvailableDays = errors.New("no available days set")

var experienceDifficulty = map[string]string{
	"beginner":     "Beginner",
	"intermediate": "Intermediate",
	"advanced":     "Advanced",
}

// Generate walks the next four weeks from today and assigns a plan to
// each of the user's available days, inserting a rest day after every
// second or third workout day. Plans are filtered to the user's level
// (Beginner plans always qualify) and cycled in order.
func Generate(user *models.User, plans []models.WorkoutPlan, today models.Date) ([]models.ScheduleEntry, error) {
	if len(user.AvailableDays) == 0 {
		return nil, ErrNoAvailableDays
	}

	suitable := suitablePlans(user.ExperienceLevel, plans)
	if len(suitable) == 0 {
		return nil, errors.New("no workout plans available")
	}

	// More available days earn a longer stretch between rest days.
	restFrequency := 2
	if len(user.AvailableDays) >= 4 {
		restFrequency = 3
	}

	var entries []models.ScheduleEntry
	planIndex := 0
	dayCount := 0

	for offset := 0; offset < ScheduleWeeks*7; offset++ {
		date := today.AddDays(offset)
		dayName := date.Weekday().String()
		if !slices.Contains(user.AvailableDays, dayName) {
			continue
		}

		isRest := dayCount > 0 && dayCount%restFrequency == 0
		entry := models.ScheduleEntry{
			ID:            uuid.New(),
			UserID:        user.ID,
			ScheduledDate: date,
			DayOfWeek:     dayName,
			IsRestDay:     isRest,
		}
		if !isRest {
			entry.WorkoutPlanID = suitable[planIndex%len(suitable)].ID
			planIndex++
		}
		entries = append(entries, entry)
		dayCount++
	}

	return entries, nil
}

func suitablePlans(experienceLevel string, plans []models.WorkoutPlan) []models.WorkoutPlan {
	target, ok := experienceDifficulty[experienceLevel]
	if !ok {
		target = "Beginner"
	}

	var suitable []models.WorkoutPlan
	for _, p := range plans {
		if p.Difficulty == target || p.Difficulty == "Beginner" {
			suitable = append(suitable, p)
		}
	}
	if len(suitable) == 0 {
		return plans
	}
	return suitable
}
