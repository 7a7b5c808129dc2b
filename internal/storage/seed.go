package storage

import (
	"context"
	"log/slog"

	"github.com/claude/forgefit/internal/models"
	"github.com/google/uuid"
)

// SeedPlans populates the workout plan catalog on first startup. A
// non-empty catalog is left untouched so operator edits survive restarts.
func (db *DB) SeedPlans(ctx context.Context, log *slog.Logger) error {
	count, err := db.CountPlans(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, plan := range seedPlans() {
		if _, err := db.InsertPlan(ctx, plan); err != nil {
			return err
		}
	}
	log.Info("seeded workout plan catalog", "plans", len(seedPlans()))
	return nil
}

func seedPlans() []models.WorkoutPlan {
	return []models.WorkoutPlan{
		{
			ID: uuid.New(), Name: "Full Body Starter", Difficulty: "Beginner",
			TargetMuscles: "Full Body", XPReward: 50, DurationMinutes: 20,
			Exercises: []models.Exercise{
				{Name: "Jumping Jacks", Reps: "30 reps", Sets: 2, RestSeconds: 30, Icon: "zap"},
				{Name: "Push-ups", Reps: "10 reps", Sets: 3, RestSeconds: 45, Icon: "activity"},
				{Name: "Squats", Reps: "15 reps", Sets: 3, RestSeconds: 45, Icon: "trending-up"},
				{Name: "Plank", Reps: "30 sec", Sets: 2, RestSeconds: 30, Icon: "minus"},
			},
		},
		{
			ID: uuid.New(), Name: "Core Crush", Difficulty: "Beginner",
			TargetMuscles: "Core", XPReward: 50, DurationMinutes: 15,
			Exercises: []models.Exercise{
				{Name: "Crunches", Reps: "20 reps", Sets: 3, RestSeconds: 30, Icon: "circle"},
				{Name: "Bicycle Crunches", Reps: "15 reps", Sets: 3, RestSeconds: 30, Icon: "repeat"},
				{Name: "Leg Raises", Reps: "12 reps", Sets: 3, RestSeconds: 30, Icon: "arrow-up"},
				{Name: "Mountain Climbers", Reps: "20 reps", Sets: 2, RestSeconds: 45, Icon: "triangle"},
			},
		},
		{
			ID: uuid.New(), Name: "Upper Body Push", Difficulty: "Intermediate",
			TargetMuscles: "Chest, Shoulders, Triceps", XPReward: 50, DurationMinutes: 25,
			Exercises: []models.Exercise{
				{Name: "Push-ups", Reps: "15 reps", Sets: 4, RestSeconds: 45, Icon: "activity"},
				{Name: "Diamond Push-ups", Reps: "10 reps", Sets: 3, RestSeconds: 45, Icon: "diamond"},
				{Name: "Tricep Dips", Reps: "12 reps", Sets: 3, RestSeconds: 45, Icon: "chevron-down"},
				{Name: "Shoulder Taps", Reps: "20 reps", Sets: 3, RestSeconds: 30, Icon: "hand"},
			},
		},
		{
			ID: uuid.New(), Name: "Lower Body Power", Difficulty: "Intermediate",
			TargetMuscles: "Legs, Glutes", XPReward: 50, DurationMinutes: 25,
			Exercises: []models.Exercise{
				{Name: "Squats", Reps: "20 reps", Sets: 4, RestSeconds: 45, Icon: "trending-up"},
				{Name: "Lunges", Reps: "12 each", Sets: 3, RestSeconds: 45, Icon: "move"},
				{Name: "Glute Bridges", Reps: "15 reps", Sets: 3, RestSeconds: 30, Icon: "chevrons-up"},
				{Name: "Calf Raises", Reps: "20 reps", Sets: 3, RestSeconds: 30, Icon: "arrow-up-circle"},
			},
		},
		{
			ID: uuid.New(), Name: "Cardio Flow", Difficulty: "Beginner",
			TargetMuscles: "Cardio", XPReward: 50, DurationMinutes: 18,
			Exercises: []models.Exercise{
				{Name: "High Knees", Reps: "30 sec", Sets: 3, RestSeconds: 30, Icon: "zap"},
				{Name: "Butt Kicks", Reps: "30 sec", Sets: 3, RestSeconds: 30, Icon: "wind"},
				{Name: "Jump Squats", Reps: "10 reps", Sets: 3, RestSeconds: 45, Icon: "trending-up"},
				{Name: "Burpees", Reps: "8 reps", Sets: 2, RestSeconds: 60, Icon: "layers"},
			},
		},
		{
			ID: uuid.New(), Name: "Core & Cardio Mix", Difficulty: "Intermediate",
			TargetMuscles: "Core, Cardio", XPReward: 50, DurationMinutes: 22,
			Exercises: []models.Exercise{
				{Name: "Plank to Downward Dog", Reps: "12 reps", Sets: 3, RestSeconds: 30, Icon: "minus"},
				{Name: "Russian Twists", Reps: "20 reps", Sets: 3, RestSeconds: 30, Icon: "rotate-cw"},
				{Name: "High Knees", Reps: "40 sec", Sets: 3, RestSeconds: 30, Icon: "zap"},
				{Name: "V-ups", Reps: "10 reps", Sets: 3, RestSeconds: 45, Icon: "chevron-up"},
			},
		},
		{
			ID: uuid.New(), Name: "Upper Body Pull", Difficulty: "Intermediate",
			TargetMuscles: "Back, Biceps", XPReward: 50, DurationMinutes: 20,
			Exercises: []models.Exercise{
				{Name: "Pull-up Hold", Reps: "20 sec", Sets: 3, RestSeconds: 45, Icon: "arrow-up"},
				{Name: "Inverted Rows", Reps: "12 reps", Sets: 3, RestSeconds: 45, Icon: "minimize-2"},
				{Name: "Superman Hold", Reps: "30 sec", Sets: 3, RestSeconds: 30, Icon: "user"},
				{Name: "Arm Circles", Reps: "20 each", Sets: 2, RestSeconds: 20, Icon: "disc"},
			},
		},
		{
			ID: uuid.New(), Name: "HIIT Challenge", Difficulty: "Advanced",
			TargetMuscles: "Full Body, Cardio", XPReward: 50, DurationMinutes: 28,
			Exercises: []models.Exercise{
				{Name: "Burpees", Reps: "15 reps", Sets: 4, RestSeconds: 45, Icon: "layers"},
				{Name: "Jump Lunges", Reps: "10 each", Sets: 3, RestSeconds: 45, Icon: "move"},
				{Name: "Plank Jacks", Reps: "20 reps", Sets: 3, RestSeconds: 30, Icon: "minus"},
				{Name: "Tuck Jumps", Reps: "12 reps", Sets: 3, RestSeconds: 60, Icon: "arrow-up-circle"},
			},
		},
		{
			ID: uuid.New(), Name: "Full Body Blast", Difficulty: "Intermediate",
			TargetMuscles: "Full Body", XPReward: 50, DurationMinutes: 24,
			Exercises: []models.Exercise{
				{Name: "Push-ups", Reps: "15 reps", Sets: 3, RestSeconds: 45, Icon: "activity"},
				{Name: "Squats", Reps: "20 reps", Sets: 3, RestSeconds: 45, Icon: "trending-up"},
				{Name: "Plank", Reps: "45 sec", Sets: 3, RestSeconds: 30, Icon: "minus"},
				{Name: "Jumping Jacks", Reps: "40 reps", Sets: 3, RestSeconds: 30, Icon: "zap"},
			},
		},
		{
			ID: uuid.New(), Name: "Recovery Stretch", Difficulty: "Beginner",
			TargetMuscles: "Flexibility", XPReward: 50, DurationMinutes: 12,
			Exercises: []models.Exercise{
				{Name: "Hamstring Stretch", Reps: "30 sec", Sets: 2, RestSeconds: 15, Icon: "minimize"},
				{Name: "Shoulder Stretch", Reps: "30 sec", Sets: 2, RestSeconds: 15, Icon: "move-horizontal"},
				{Name: "Cat-Cow Pose", Reps: "10 reps", Sets: 2, RestSeconds: 15, Icon: "wave"},
				{Name: "Child's Pose", Reps: "60 sec", Sets: 1, RestSeconds: 0, Icon: "heart"},
			},
		},
	}
}
