package progress

import (
	"slices"
	"testing"
	"time"

	"github.com/claude/forgefit/internal/models"
	"github.com/google/uuid"
)

var plan = &models.WorkoutPlan{Name: "Core Crush", XPReward: 50}

func date(day int) models.Date {
	return models.NewDate(2024, time.July, day)
}

// TestFirstWorkout verifies the baseline: 50 XP, level 1, streak 1.
func TestFirstWorkout(t *testing.T) {
	updated, result := Apply(models.Progress{}, plan, 1, date(1))

	if result.XPEarned != 50 || result.NewTotalXP != 50 {
		t.Errorf("xp = %d/%d, want 50/50", result.XPEarned, result.NewTotalXP)
	}
	if result.NewLevel != 1 {
		t.Errorf("level = %d, want 1", result.NewLevel)
	}
	if result.NewStreak != 1 {
		t.Errorf("streak = %d, want 1", result.NewStreak)
	}
	if updated.LastWorkoutDate == nil || !updated.LastWorkoutDate.SameDay(date(1)) {
		t.Errorf("last workout date = %v, want %s", updated.LastWorkoutDate, date(1))
	}
}

// TestLevelBoundary verifies the level formula at the 500 XP threshold.
func TestLevelBoundary(t *testing.T) {
	tests := []struct {
		priorXP int
		want    int
	}{
		{400, 1},  // 450 total
		{450, 2},  // 500 total
		{940, 2},  // 990 total
		{950, 3},  // 1000 total
	}
	for _, tt := range tests {
		_, result := Apply(models.Progress{TotalXP: tt.priorXP}, plan, 1, date(1))
		if result.NewLevel != tt.want {
			t.Errorf("prior %d XP: level = %d, want %d", tt.priorXP, result.NewLevel, tt.want)
		}
	}
}

// TestStreakRules verifies same-day, consecutive-day, and broken streaks.
func TestStreakRules(t *testing.T) {
	last := date(10)
	tests := []struct {
		name  string
		prior models.Progress
		today models.Date
		want  int
	}{
		{"same day holds", models.Progress{Streak: 4, LastWorkoutDate: &last}, date(10), 4},
		{"next day increments", models.Progress{Streak: 4, LastWorkoutDate: &last}, date(11), 5},
		{"gap resets", models.Progress{Streak: 4, LastWorkoutDate: &last}, date(13), 1},
		{"no history starts at one", models.Progress{Streak: 0}, date(10), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, result := Apply(tt.prior, plan, 1, tt.today)
			if result.NewStreak != tt.want {
				t.Errorf("streak = %d, want %d", result.NewStreak, tt.want)
			}
		})
	}
}

// TestAchievementUnlocks verifies threshold unlocks and that already-held
// achievements are not reported again.
func TestAchievementUnlocks(t *testing.T) {
	last := date(9)
	prior := models.Progress{
		Streak:          6,
		LastWorkoutDate: &last,
		Achievements:    []string{"first_5"},
	}

	updated, result := Apply(prior, plan, 10, date(10))

	if !slices.Contains(result.NewAchievements, "first_10") {
		t.Errorf("new achievements = %v, want first_10", result.NewAchievements)
	}
	if !slices.Contains(result.NewAchievements, "streak_7") {
		t.Errorf("new achievements = %v, want streak_7 (streak reached %d)", result.NewAchievements, result.NewStreak)
	}
	if slices.Contains(result.NewAchievements, "first_5") {
		t.Error("first_5 reported as new despite being already held")
	}
	if !slices.Contains(updated.Achievements, "first_5") {
		t.Error("first_5 dropped from the earned set")
	}
}

// TestCatalog verifies unlocked flags against an earned set.
func TestCatalog(t *testing.T) {
	catalog := Catalog([]string{"first_5", "streak_7"})
	if len(catalog) != len(Definitions) {
		t.Fatalf("catalog size = %d, want %d", len(catalog), len(Definitions))
	}
	for _, a := range catalog {
		wantUnlocked := a.ID == "first_5" || a.ID == "streak_7"
		if a.Unlocked != wantUnlocked {
			t.Errorf("%s unlocked = %v, want %v", a.ID, a.Unlocked, wantUnlocked)
		}
	}
}

// TestJourney verifies catalog annotation: completed flags, positions,
// and next markers after every completed predecessor.
func TestJourney(t *testing.T) {
	catalog := []models.WorkoutPlan{
		{ID: uuid.New(), Name: "Quick Start"},
		{ID: uuid.New(), Name: "Full Body Blast"},
		{ID: uuid.New(), Name: "Core Crusher"},
		{ID: uuid.New(), Name: "Iron Will"},
	}

	// First and third done; the user skipped ahead.
	completed := []uuid.UUID{catalog[0].ID, catalog[2].ID}
	steps := Journey(catalog, completed)

	if len(steps) != len(catalog) {
		t.Fatalf("got %d steps, want %d", len(steps), len(catalog))
	}
	for i, step := range steps {
		if step.Position != i {
			t.Errorf("step %d: position = %d, want %d", i, step.Position, i)
		}
	}

	wantCompleted := []bool{true, false, true, false}
	wantNext := []bool{false, true, false, true}
	for i, step := range steps {
		if step.IsCompleted != wantCompleted[i] {
			t.Errorf("%s: is_completed = %v, want %v", step.Name, step.IsCompleted, wantCompleted[i])
		}
		if step.IsNext != wantNext[i] {
			t.Errorf("%s: is_next = %v, want %v", step.Name, step.IsNext, wantNext[i])
		}
	}
}

// TestJourneyFresh verifies only the first plan is suggested before any
// workout is completed.
func TestJourneyFresh(t *testing.T) {
	catalog := []models.WorkoutPlan{
		{ID: uuid.New(), Name: "Quick Start"},
		{ID: uuid.New(), Name: "Full Body Blast"},
	}

	steps := Journey(catalog, nil)
	if !steps[0].IsNext || steps[0].IsCompleted {
		t.Errorf("first step: is_next = %v, is_completed = %v, want next and not completed",
			steps[0].IsNext, steps[0].IsCompleted)
	}
	if steps[1].IsNext {
		t.Error("second step should not be next before the first is completed")
	}
}
