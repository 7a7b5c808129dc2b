package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/claude/forgefit/internal/clock"
	"github.com/claude/forgefit/internal/models"
)

// movableClock lets a test change "today" between evaluations.
type movableClock struct {
	now time.Time
}

func (c *movableClock) Now() time.Time { return c.now }

func fixedGateway(year int, month time.Month, day int) (*Gateway, *movableClock) {
	clk := &movableClock{now: time.Date(year, month, day, 10, 30, 0, 0, time.UTC)}
	return New(clk), clk
}

func entry(d models.Date, restDay, completed, lockedHint bool) models.ScheduleEntry {
	return models.ScheduleEntry{
		ScheduledDate: d,
		DayOfWeek:     d.Weekday().String(),
		IsRestDay:     restDay,
		IsCompleted:   completed,
		IsLocked:      lockedHint,
	}
}

// TestWeekStart verifies the Monday-on-or-before mapping, including the
// Sunday wrap.
func TestWeekStart(t *testing.T) {
	tests := []struct {
		date models.Date
		want string
	}{
		{models.NewDate(2024, time.January, 1), "2024-01-01"},  // Monday
		{models.NewDate(2024, time.January, 3), "2024-01-01"},  // Wednesday
		{models.NewDate(2024, time.January, 6), "2024-01-01"},  // Saturday
		{models.NewDate(2024, time.January, 7), "2024-01-01"},  // Sunday joins the preceding Monday
		{models.NewDate(2024, time.January, 8), "2024-01-08"},  // next Monday
		{models.NewDate(2024, time.February, 29), "2024-02-26"},
	}

	for _, tt := range tests {
		if got := WeekStart(tt.date); got.String() != tt.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}
}

// TestWeeksBucketing verifies a Sunday and the following Monday land in
// different buckets, and that buckets come back sorted ascending.
func TestWeeksBucketing(t *testing.T) {
	g, _ := fixedGateway(2024, time.January, 7)
	entries := []models.ScheduleEntry{
		entry(models.NewDate(2024, time.January, 8), false, false, false),
		entry(models.NewDate(2024, time.January, 7), false, false, false),
		entry(models.NewDate(2024, time.January, 10), false, false, false),
	}

	weeks := g.Weeks(entries)
	if len(weeks) != 2 {
		t.Fatalf("weeks = %d, want 2", len(weeks))
	}
	if weeks[0].Start.String() != "2024-01-01" {
		t.Errorf("first week start = %s, want 2024-01-01", weeks[0].Start)
	}
	if weeks[1].Start.String() != "2024-01-08" {
		t.Errorf("second week start = %s, want 2024-01-08", weeks[1].Start)
	}
	if len(weeks[0].Entries) != 1 || len(weeks[1].Entries) != 2 {
		t.Errorf("bucket sizes = %d/%d, want 1/2", len(weeks[0].Entries), len(weeks[1].Entries))
	}
}

// TestVisibleViewport verifies only the first four weeks render while the
// full set stays available.
func TestVisibleViewport(t *testing.T) {
	g, _ := fixedGateway(2024, time.March, 4)
	var entries []models.ScheduleEntry
	start := models.NewDate(2024, time.March, 4)
	for week := 0; week < 6; week++ {
		entries = append(entries, entry(start.AddDays(week*7), false, false, false))
	}

	weeks := g.Weeks(entries)
	if len(weeks) != 6 {
		t.Fatalf("weeks = %d, want 6", len(weeks))
	}
	visible := Visible(weeks)
	if len(visible) != VisibleWeeks {
		t.Fatalf("visible weeks = %d, want %d", len(visible), VisibleWeeks)
	}
	if visible[0].Start.String() != "2024-03-04" {
		t.Errorf("first visible week = %s, want 2024-03-04", visible[0].Start)
	}
}

// TestLockStates covers the full classification table, including the
// rule that a future date is locked regardless of the server hint.
func TestLockStates(t *testing.T) {
	g, clk := fixedGateway(2024, time.June, 15)
	today := models.DateOf(clk.Now())

	tests := []struct {
		name  string
		entry models.ScheduleEntry
		want  LockState
	}{
		{"future", entry(today.AddDays(1), false, false, true), Locked},
		{"future despite unlocked hint", entry(today.AddDays(3), false, false, false), Locked},
		{"future rest day", entry(today.AddDays(2), true, false, false), Locked},
		{"rest day today", entry(today, true, false, false), RestDay},
		{"rest day past", entry(today.AddDays(-2), true, false, false), RestDay},
		{"completed past", entry(today.AddDays(-1), false, true, false), UnlockedPastComplete},
		{"completed today", entry(today, false, true, false), UnlockedPastComplete},
		{"today", entry(today, false, false, false), UnlockedToday},
		{"missed", entry(today.AddDays(-3), false, false, false), UnlockedPastIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.LockState(tt.entry); got != tt.want {
				t.Errorf("LockState = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestLockScenario runs the yesterday/today/tomorrow fixture.
func TestLockScenario(t *testing.T) {
	g, clk := fixedGateway(2024, time.June, 15)
	today := models.DateOf(clk.Now())

	entries := []models.ScheduleEntry{
		entry(today.AddDays(-1), false, false, false),
		entry(today, false, false, false),
		entry(today.AddDays(1), false, false, false),
	}
	want := []LockState{UnlockedPastIncomplete, UnlockedToday, Locked}

	for i, e := range entries {
		if got := g.LockState(e); got != want[i] {
			t.Errorf("entry %d: LockState = %v, want %v", i, got, want[i])
		}
	}
}

// TestLockStateNotMemoized verifies the decision tracks the clock: the
// same entry re-evaluated after midnight changes state.
func TestLockStateNotMemoized(t *testing.T) {
	g, clk := fixedGateway(2024, time.June, 15)
	e := entry(models.NewDate(2024, time.June, 15), false, false, false)

	if got := g.LockState(e); got != UnlockedToday {
		t.Fatalf("LockState today = %v, want UnlockedToday", got)
	}

	clk.now = clk.now.AddDate(0, 0, 1)
	if got := g.LockState(e); got != UnlockedPastIncomplete {
		t.Errorf("LockState next day = %v, want UnlockedPastIncomplete", got)
	}

	clk.now = clk.now.AddDate(0, 0, -2)
	if got := g.LockState(e); got != Locked {
		t.Errorf("LockState day before = %v, want Locked", got)
	}
}

// TestCanOpen verifies the navigation predicate and that the rejection
// names the reason.
func TestCanOpen(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)
	g := New(clock.Fixed{T: now})
	today := models.DateOf(now)

	if err := g.CanOpen(entry(today, false, false, false)); err != nil {
		t.Errorf("today entry: CanOpen = %v, want nil", err)
	}
	if err := g.CanOpen(entry(today.AddDays(-2), false, false, false)); err != nil {
		t.Errorf("missed entry: CanOpen = %v, want nil", err)
	}
	if err := g.CanOpen(entry(today.AddDays(-1), false, true, false)); err != nil {
		t.Errorf("completed entry: CanOpen = %v, want nil (view-only)", err)
	}
	if !g.ViewOnly(entry(today.AddDays(-1), false, true, false)) {
		t.Error("completed entry should be view-only")
	}

	err := g.CanOpen(entry(today, true, false, false))
	if !errors.Is(err, ErrRestDay) {
		t.Errorf("rest day: CanOpen = %v, want ErrRestDay", err)
	}

	err = g.CanOpen(entry(today.AddDays(5), false, false, false))
	var locked *LockedError
	if !errors.As(err, &locked) {
		t.Fatalf("future entry: CanOpen = %v, want LockedError", err)
	}
	if !locked.ScheduledDate.SameDay(today.AddDays(5)) {
		t.Errorf("LockedError date = %s, want %s", locked.ScheduledDate, today.AddDays(5))
	}
}
