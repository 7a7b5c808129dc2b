package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func compressTicks(t *testing.T) {
	t.Helper()
	saved := tickInterval
	tickInterval = time.Millisecond
	t.Cleanup(func() { tickInterval = saved })
}

// TestRunRestCompletes verifies the runner drives the countdown to zero
// and returns once the engine presents the next exercise.
func TestRunRestCompletes(t *testing.T) {
	compressTicks(t)

	e, err := New(testPlan(3, 30), &fakeReporter{}, &stepClock{now: time.Now()})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.CompleteExercise(context.Background()); err != nil {
		t.Fatal(err)
	}

	var seen []int
	if err := RunRest(context.Background(), e, func(remaining int) {
		seen = append(seen, remaining)
	}); err != nil {
		t.Fatalf("RunRest: %v", err)
	}

	if e.State() != StatePresenting || e.CurrentIndex() != 1 {
		t.Fatalf("state = %v index %d, want presenting 1", e.State(), e.CurrentIndex())
	}
	want := []int{2, 1, 0}
	if len(seen) != len(want) {
		t.Fatalf("ticks seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("tick %d = %d, want %d", i, seen[i], want[i])
		}
	}
}

// TestRunRestCancelled verifies that cancelling the context stops the
// countdown without advancing the engine.
func TestRunRestCancelled(t *testing.T) {
	e, err := New(testPlan(300, 30), &fakeReporter{}, &stepClock{now: time.Now()})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.CompleteExercise(context.Background()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := RunRest(ctx, e, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("RunRest error = %v, want context.Canceled", err)
	}
	if !e.IsResting() {
		t.Error("engine advanced despite cancellation")
	}
}

// TestRunRestNotResting verifies the runner is a no-op outside a rest
// period.
func TestRunRestNotResting(t *testing.T) {
	e, err := New(testPlan(30, 30), &fakeReporter{}, &stepClock{now: time.Now()})
	if err != nil {
		t.Fatal(err)
	}
	if err := RunRest(context.Background(), e, nil); err != nil {
		t.Fatalf("RunRest: %v", err)
	}
	if e.CurrentIndex() != 0 {
		t.Errorf("index = %d, want 0", e.CurrentIndex())
	}
}
