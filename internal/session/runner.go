package session

import (
	"context"
	"time"
)

// tickInterval is the real-time spacing between rest countdown ticks.
// Package variable so tests can compress it.
var tickInterval = time.Second

// RunRest drives the engine's rest countdown from the real clock until
// the countdown expires or ctx is cancelled. The ticker is stopped on
// every exit path, so abandoning a session mid-rest cannot leave a
// dangling countdown mutating a discarded engine. onTick, if non-nil, is
// called after each tick with the seconds remaining.
//
// The advance to the next exercise is derived from the countdown itself
// reaching zero, so the displayed seconds and the actual delay can never
// disagree.
func RunRest(ctx context.Context, e *Engine, onTick func(remaining int)) error {
	if !e.IsResting() {
		return nil
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			e.Tick()
			if onTick != nil {
				onTick(e.RestRemaining())
			}
			if !e.IsResting() {
				return nil
			}
		}
	}
}
