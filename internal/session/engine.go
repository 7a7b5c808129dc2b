// Package session drives a single workout attempt from its first exercise
// to completion under a one-second rest countdown.
package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/claude/forgefit/internal/clock"
	"github.com/claude/forgefit/internal/models"
)

// DefaultRestSeconds is applied when an exercise has no configured rest
// duration. It must be applied, not treated as zero, so rest is never
// skipped entirely.
const DefaultRestSeconds = 30

// State is the engine's position in the workout lifecycle.
type State int

const (
	// StatePresenting shows one exercise and awaits completion.
	StatePresenting State = iota
	// StateResting counts down between exercises.
	StateResting
	// StateFinished is terminal: every exercise is done.
	StateFinished
)

func (s State) String() string {
	switch s {
	case StatePresenting:
		return "presenting"
	case StateResting:
		return "resting"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

var (
	// ErrNoExercises rejects plans with an empty exercise list.
	ErrNoExercises = errors.New("workout plan has no exercises")
	// ErrSessionFinished rejects events after the terminal state.
	ErrSessionFinished = errors.New("session already finished")
	// ErrSubmissionInFlight rejects a completion event while the final
	// report is outstanding, preventing duplicate progress credit.
	ErrSubmissionInFlight = errors.New("completion submission in flight")
)

// Reporter submits the finished workout to the progress service.
type Reporter interface {
	Report(ctx context.Context, req models.CompletionRequest) (*models.CompletionResult, error)
}

// Engine owns the live state of one workout attempt. It is a synchronous
// state machine: callers deliver CompleteExercise and Tick events in
// order, there is no internal goroutine. Use RunRest to drive Tick from
// a real clock.
type Engine struct {
	plan     *models.WorkoutPlan
	reporter Reporter
	clk      clock.Clock

	state           State
	current         int
	completed       map[int]struct{}
	restRemaining   int
	startedAt       time.Time
	submitting      bool
	durationMinutes int
	result          *models.CompletionResult
}

// New starts a session at the plan's first exercise. The start time is
// captured immediately and used for the elapsed-minutes report.
func New(plan *models.WorkoutPlan, reporter Reporter, clk clock.Clock) (*Engine, error) {
	if plan == nil || len(plan.Exercises) == 0 {
		return nil, ErrNoExercises
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Engine{
		plan:      plan,
		reporter:  reporter,
		clk:       clk,
		state:     StatePresenting,
		completed: make(map[int]struct{}),
		startedAt: clk.Now(),
	}, nil
}

// State reports the current lifecycle state.
func (e *Engine) State() State { return e.state }

// CurrentIndex is the exercise currently presented (or, while resting,
// the exercise whose rest period is running). Monotonically non-decreasing.
func (e *Engine) CurrentIndex() int { return e.current }

// RestRemaining is the seconds left in the current rest period; zero when
// not resting.
func (e *Engine) RestRemaining() int { return e.restRemaining }

// IsResting reports whether a rest countdown is running. Always consistent
// with RestRemaining() > 0.
func (e *Engine) IsResting() bool { return e.state == StateResting }

// IsCompleted reports whether the exercise at index i has been marked done.
func (e *Engine) IsCompleted(i int) bool {
	_, ok := e.completed[i]
	return ok
}

// CompletedCount is the number of distinct exercises marked done.
func (e *Engine) CompletedCount() int { return len(e.completed) }

// Plan returns the workout definition this session is executing.
func (e *Engine) Plan() *models.WorkoutPlan { return e.plan }

// Elapsed is the wall-clock time since the session started.
func (e *Engine) Elapsed() time.Duration { return e.clk.Now().Sub(e.startedAt) }

// Result returns the progress service's response once the session has
// finished and the report succeeded, nil otherwise.
func (e *Engine) Result() *models.CompletionResult { return e.result }

// ReportedDuration is the elapsed-minutes value sent in the completion
// report, fixed at the moment the final exercise completed. Zero before
// the session finishes.
func (e *Engine) ReportedDuration() int { return e.durationMinutes }

// CompleteExercise marks the currently presented exercise done. For a
// non-final exercise it starts the rest countdown; re-invoking before the
// index advances is idempotent on the completed set but restarts the
// countdown. For the final exercise it transitions to Finished and submits
// the completion report. A failed report leaves the state Finished (the
// exercises were genuinely completed, only the reward accounting failed)
// and is never retried here to avoid double-crediting.
func (e *Engine) CompleteExercise(ctx context.Context) (*models.CompletionResult, error) {
	// The in-flight check must precede the terminal check: the state is
	// already Finished while the report is outstanding, and a reentrant
	// completion during that window must be told the submission is in
	// flight, not that the session ended.
	if e.submitting {
		return nil, ErrSubmissionInFlight
	}
	if e.state == StateFinished {
		return e.result, ErrSessionFinished
	}

	e.completed[e.current] = struct{}{}

	if e.current < len(e.plan.Exercises)-1 {
		e.restRemaining = restSeconds(e.plan.Exercises[e.current])
		e.state = StateResting
		return nil, nil
	}

	e.state = StateFinished
	e.restRemaining = 0

	e.durationMinutes = int(math.Round(e.Elapsed().Minutes()))
	e.submitting = true
	result, err := e.reporter.Report(ctx, models.CompletionRequest{
		WorkoutPlanID:   e.plan.ID,
		DurationMinutes: e.durationMinutes,
	})
	e.submitting = false
	if err != nil {
		return nil, fmt.Errorf("reporting completion: %w", err)
	}
	e.result = result
	return result, nil
}

// Tick advances the rest countdown by one second. Reaching zero presents
// the next exercise without further input; the countdown never goes
// negative and the engine never sits in a zero-second rest. Outside the
// resting state Tick is a no-op.
func (e *Engine) Tick() {
	if e.state != StateResting {
		return
	}
	if e.restRemaining > 1 {
		e.restRemaining--
		return
	}
	e.restRemaining = 0
	e.current++
	e.state = StatePresenting
}

func restSeconds(ex models.Exercise) int {
	if ex.RestSeconds <= 0 {
		return DefaultRestSeconds
	}
	return ex.RestSeconds
}
