// Package progress computes XP, level, streak, and achievement updates
// for a completed workout. Pure computation; persistence lives in storage.
package progress

import (
	"slices"

	"github.com/claude/forgefit/internal/models"
	"github.com/google/uuid"
)

// XPPerLevel is the XP span of one level: level = totalXP/500 + 1.
const XPPerLevel = 500

// Definitions is the achievement catalog.
var Definitions = []models.Achievement{
	{ID: "first_5", Name: "First Steps", Description: "Complete 5 workouts", Icon: "award"},
	{ID: "first_10", Name: "Getting Strong", Description: "Complete 10 workouts", Icon: "trophy"},
	{ID: "warrior_50", Name: "Warrior", Description: "Complete 50 workouts", Icon: "crown"},
	{ID: "streak_7", Name: "Week Warrior", Description: "7-day streak", Icon: "flame"},
	{ID: "streak_30", Name: "Unstoppable", Description: "30-day streak", Icon: "zap"},
}

// Catalog returns the full achievement list with unlocked flags for the
// given earned set.
func Catalog(earned []string) []models.Achievement {
	out := make([]models.Achievement, len(Definitions))
	for i, def := range Definitions {
		def.Unlocked = slices.Contains(earned, def.ID)
		out[i] = def
	}
	return out
}

// Apply folds one completed workout into the user's progress.
// totalWorkouts counts all recorded sessions including this one. today is
// the completion date; the streak increments on consecutive days, holds
// on a same-day repeat, and resets otherwise.
func Apply(prior models.Progress, plan *models.WorkoutPlan, totalWorkouts int, today models.Date) (models.Progress, models.CompletionResult) {
	newTotalXP := prior.TotalXP + plan.XPReward
	newLevel := newTotalXP/XPPerLevel + 1
	newStreak := nextStreak(prior, today)

	achievements := slices.Clone(prior.Achievements)
	unlock := func(id string, earned bool) {
		if earned && !slices.Contains(achievements, id) {
			achievements = append(achievements, id)
		}
	}
	unlock("first_5", totalWorkouts >= 5)
	unlock("first_10", totalWorkouts >= 10)
	unlock("warrior_50", totalWorkouts >= 50)
	unlock("streak_7", newStreak >= 7)
	unlock("streak_30", newStreak >= 30)

	var newAchievements []string
	for _, id := range achievements {
		if !slices.Contains(prior.Achievements, id) {
			newAchievements = append(newAchievements, id)
		}
	}

	updated := models.Progress{
		UserID:          prior.UserID,
		TotalXP:         newTotalXP,
		Level:           newLevel,
		Streak:          newStreak,
		LastWorkoutDate: &today,
		Achievements:    achievements,
	}
	result := models.CompletionResult{
		XPEarned:        plan.XPReward,
		NewTotalXP:      newTotalXP,
		NewLevel:        newLevel,
		NewStreak:       newStreak,
		NewAchievements: newAchievements,
	}
	return updated, result
}

func nextStreak(prior models.Progress, today models.Date) int {
	if prior.LastWorkoutDate == nil {
		return 1
	}
	switch daysBetween(*prior.LastWorkoutDate, today) {
	case 0:
		return prior.Streak
	case 1:
		return prior.Streak + 1
	default:
		return 1
	}
}

func daysBetween(from, to models.Date) int {
	return int(to.Sub(from.Time).Hours() / 24)
}

// Journey annotates the plan catalog with the user's progression: which
// plans have been completed, and which uncompleted plan is up next. Every
// uncompleted plan directly after a completed one (or in first position)
// is marked next, so a user who skipped ahead still sees the gap.
func Journey(plans []models.WorkoutPlan, completedPlanIDs []uuid.UUID) []models.JourneyStep {
	completed := make(map[uuid.UUID]bool, len(completedPlanIDs))
	for _, id := range completedPlanIDs {
		completed[id] = true
	}

	steps := make([]models.JourneyStep, len(plans))
	for i, plan := range plans {
		done := completed[plan.ID]
		steps[i] = models.JourneyStep{
			WorkoutPlan: plan,
			IsCompleted: done,
			IsNext:      !done && (i == 0 || completed[plans[i-1].ID]),
			Position:    i,
		}
	}
	return steps
}
