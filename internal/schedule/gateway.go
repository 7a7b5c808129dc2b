// Package schedule turns a flat list of scheduled days into a
// week-partitioned calendar and decides, per entry, whether it may be
// opened today.
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/claude/forgefit/internal/clock"
	"github.com/claude/forgefit/internal/models"
)

// VisibleWeeks is the calendar viewport: only the first four weeks render
// by default. Later weeks stay in the model.
const VisibleWeeks = 4

// LockState classifies a schedule entry relative to today.
type LockState int

const (
	// Locked entries are dated in the future and reject navigation.
	Locked LockState = iota
	// UnlockedToday is the primary actionable entry.
	UnlockedToday
	// UnlockedPastIncomplete is a missed workout the user may still complete.
	UnlockedPastIncomplete
	// UnlockedPastComplete opens in view-only mode, never to restart.
	UnlockedPastComplete
	// RestDay entries are never navigable.
	RestDay
)

func (s LockState) String() string {
	switch s {
	case Locked:
		return "locked"
	case UnlockedToday:
		return "today"
	case UnlockedPastIncomplete:
		return "past-incomplete"
	case UnlockedPastComplete:
		return "completed"
	case RestDay:
		return "rest-day"
	default:
		return "unknown"
	}
}

// ErrRestDay rejects navigation into a rest day.
var ErrRestDay = errors.New("rest days have no workout to open")

// LockedError rejects navigation into a future-dated entry, naming the
// dates involved so the user sees why.
type LockedError struct {
	ScheduledDate models.Date
	Today         models.Date
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("workout scheduled for %s is locked until that date (today is %s)",
		e.ScheduledDate, e.Today)
}

// Week is a Monday-anchored grouping of schedule entries. Derived on every
// render, never persisted.
type Week struct {
	Start   models.Date
	Entries []models.ScheduleEntry
}

// Gateway evaluates lock state and week bucketing against the injected
// clock. "Today" is read from the clock on every evaluation, never cached,
// so a process running across midnight stays correct.
type Gateway struct {
	clk clock.Clock
}

// New creates a Gateway. A nil clock falls back to the system clock.
func New(clk clock.Clock) *Gateway {
	if clk == nil {
		clk = clock.System{}
	}
	return &Gateway{clk: clk}
}

// WeekStart maps a date to the Monday on or before it.
func WeekStart(d models.Date) models.Date {
	daysBack := int(d.Weekday()) - 1
	if d.Weekday() == time.Sunday {
		daysBack = 6
	}
	return d.AddDays(-daysBack)
}

// Weeks buckets entries by their week start, sorted ascending. Entry order
// within a week follows the input, which the server returns date-ordered.
func (g *Gateway) Weeks(entries []models.ScheduleEntry) []Week {
	byStart := make(map[string]*Week)
	var starts []string
	for _, e := range entries {
		start := WeekStart(e.ScheduledDate)
		key := start.String()
		w, ok := byStart[key]
		if !ok {
			w = &Week{Start: start}
			byStart[key] = w
			starts = append(starts, key)
		}
		w.Entries = append(w.Entries, e)
	}

	sort.Strings(starts)
	weeks := make([]Week, 0, len(starts))
	for _, key := range starts {
		weeks = append(weeks, *byStart[key])
	}
	return weeks
}

// Visible returns the rendered viewport: at most the first VisibleWeeks.
func Visible(weeks []Week) []Week {
	if len(weeks) > VisibleWeeks {
		return weeks[:VisibleWeeks]
	}
	return weeks
}

// LockState classifies one entry against today. The future-date check
// comes first and ignores the server's is_locked hint entirely: the date
// rule is enforced here as defense in depth, since the hint and the date
// can disagree.
func (g *Gateway) LockState(e models.ScheduleEntry) LockState {
	today := models.DateOf(g.clk.Now())

	switch {
	case e.ScheduledDate.DayAfter(today):
		return Locked
	case e.IsRestDay:
		return RestDay
	case e.IsCompleted:
		return UnlockedPastComplete
	case e.ScheduledDate.SameDay(today):
		return UnlockedToday
	default:
		return UnlockedPastIncomplete
	}
}

// CanOpen authorizes navigation into an entry. It returns nil when the
// entry may be opened (including completed entries, which open in
// view-only mode) and a reason-specific error otherwise.
func (g *Gateway) CanOpen(e models.ScheduleEntry) error {
	switch g.LockState(e) {
	case Locked:
		return &LockedError{ScheduledDate: e.ScheduledDate, Today: models.DateOf(g.clk.Now())}
	case RestDay:
		return ErrRestDay
	default:
		return nil
	}
}

// ViewOnly reports whether an openable entry should be presented without
// the option to start a session.
func (g *Gateway) ViewOnly(e models.ScheduleEntry) bool {
	return g.LockState(e) == UnlockedPastComplete
}
