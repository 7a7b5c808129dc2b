// Command forgefit-coach runs a scheduled workout from the terminal: it
// renders the calendar, opens an unlocked day, walks the exercises with
// live rest countdowns, and reports the completion to the server.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/claude/forgefit/internal/client"
	"github.com/claude/forgefit/internal/clock"
	"github.com/claude/forgefit/internal/models"
	"github.com/claude/forgefit/internal/schedule"
	"github.com/claude/forgefit/internal/session"
	"github.com/google/uuid"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "ForgeFit server URL (e.g. https://forgefit.tail1234.ts.net)")
	entryFlag := flag.String("entry", "", "schedule entry ID to open (defaults to today's workout)")
	force := flag.Bool("force", false, "run even if the local journal shows this entry already submitted")
	calendarOnly := flag.Bool("calendar", false, "print the calendar and exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("forgefit-coach", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if *serverURL == "" {
		fmt.Fprintf(os.Stderr, "Usage: forgefit-coach -server <URL> [-entry <id>] [-calendar] [-force]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := client.NewClient(*serverURL)
	gw := schedule.New(clock.System{})

	entries, err := c.FetchSchedule(ctx)
	if err != nil {
		log.Error("failed to fetch schedule", "error", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("No schedule yet. Generate one from the server first.")
		return
	}

	printCalendar(gw, entries)
	if *calendarOnly {
		return
	}

	entry, err := selectEntry(gw, entries, *entryFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := gw.CanOpen(*entry); err != nil {
		var locked *schedule.LockedError
		switch {
		case errors.As(err, &locked):
			fmt.Printf("That workout is locked until %s (today is %s).\n", locked.ScheduledDate, locked.Today)
		case errors.Is(err, schedule.ErrRestDay):
			fmt.Println("That's a rest day. Enjoy it.")
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	if gw.ViewOnly(*entry) {
		fmt.Printf("%s on %s is already completed. Nothing to do.\n", entryName(*entry), entry.ScheduledDate)
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	journal, err := client.OpenJournal(filepath.Join(homeDir, ".forgefit-coach"))
	if err != nil {
		log.Error("failed to open journal", "error", err)
		os.Exit(1)
	}
	defer journal.Close()

	submitted, err := journal.IsSubmitted(entry.ID.String())
	if err != nil {
		log.Error("journal lookup failed", "error", err)
		os.Exit(1)
	}
	if submitted && !*force {
		fmt.Println("This workout was already submitted from this machine. Use -force to run it again anyway.")
		os.Exit(1)
	}

	plan := entry.WorkoutDetails
	if plan == nil {
		plan, err = c.FetchPlan(ctx, entry.WorkoutPlanID)
		if err != nil {
			log.Error("failed to fetch workout plan", "error", err)
			os.Exit(1)
		}
	}

	result, durationMinutes, err := runSession(ctx, plan, &client.ScheduledReporter{Client: c, EntryID: entry.ID})
	if err != nil {
		log.Error("session failed", "error", err)
		os.Exit(1)
	}

	today := models.DateOf(time.Now().UTC())
	if err := journal.MarkSubmitted(entry.ID.String(), today, durationMinutes, result.XPEarned); err != nil {
		log.Warn("failed to record submission in journal", "error", err)
	}

	printRewards(result)

	// Re-fetch so the calendar reflects the completion.
	if entries, err = c.FetchSchedule(ctx); err == nil {
		printCalendar(gw, entries)
	}
}

// selectEntry resolves the -entry flag, falling back to today's entry.
func selectEntry(gw *schedule.Gateway, entries []models.ScheduleEntry, entryFlag string) (*models.ScheduleEntry, error) {
	if entryFlag != "" {
		id, err := uuid.Parse(entryFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid entry ID %q: %w", entryFlag, err)
		}
		for i := range entries {
			if entries[i].ID == id {
				return &entries[i], nil
			}
		}
		return nil, fmt.Errorf("no schedule entry with ID %s", id)
	}

	for i := range entries {
		if gw.LockState(entries[i]) == schedule.UnlockedToday {
			return &entries[i], nil
		}
	}
	return nil, errors.New("nothing scheduled for today; pass -entry to open a past workout")
}

// runSession walks the plan's exercises interactively and returns the
// server's reward response along with the elapsed minutes that were
// actually reported.
func runSession(ctx context.Context, plan *models.WorkoutPlan, reporter session.Reporter) (*models.CompletionResult, int, error) {
	eng, err := session.New(plan, reporter, clock.System{})
	if err != nil {
		return nil, 0, err
	}

	fmt.Printf("\n=== %s (%s, %d XP) ===\n", plan.Name, plan.Difficulty, plan.XPReward)
	reader := bufio.NewReader(os.Stdin)

	for eng.State() != session.StateFinished {
		ex := plan.Exercises[eng.CurrentIndex()]
		fmt.Printf("\n[%d/%d] %s %s: %d sets x %s\n",
			eng.CurrentIndex()+1, len(plan.Exercises), ex.Icon, ex.Name, ex.Sets, ex.Reps)
		fmt.Print("Press Enter when done... ")
		if _, err := reader.ReadString('\n'); err != nil {
			return nil, 0, fmt.Errorf("reading input: %w", err)
		}

		result, err := eng.CompleteExercise(ctx)
		if err != nil {
			return nil, 0, err
		}
		if result != nil {
			return result, eng.ReportedDuration(), nil
		}

		if eng.IsResting() {
			fmt.Println()
			err := session.RunRest(ctx, eng, func(remaining int) {
				fmt.Printf("\rRest: %3ds ", remaining)
			})
			if err != nil {
				return nil, 0, err
			}
			fmt.Print("\rGo!          \n")
		}
	}

	return eng.Result(), eng.ReportedDuration(), nil
}

func printCalendar(gw *schedule.Gateway, entries []models.ScheduleEntry) {
	weeks := schedule.Visible(gw.Weeks(entries))

	fmt.Println("=== Schedule ===")
	for _, week := range weeks {
		fmt.Printf("\nWeek of %s\n", week.Start)
		for _, e := range week.Entries {
			fmt.Printf("  %s %-9s %-28s [%s]\n",
				e.ScheduledDate, e.DayOfWeek, entryName(e), gw.LockState(e))
		}
	}
	fmt.Println()
}

func entryName(e models.ScheduleEntry) string {
	if e.IsRestDay {
		return "Rest Day"
	}
	if e.WorkoutDetails != nil {
		return e.WorkoutDetails.Name
	}
	return e.WorkoutPlanID.String()
}

func printRewards(result *models.CompletionResult) {
	fmt.Println("\n=== Workout Complete ===")
	fmt.Printf("  XP earned:   +%d (total %d)\n", result.XPEarned, result.NewTotalXP)
	fmt.Printf("  Level:       %d\n", result.NewLevel)
	fmt.Printf("  Streak:      %d day(s)\n", result.NewStreak)
	for _, a := range result.NewAchievements {
		fmt.Printf("  Achievement unlocked: %s\n", a)
	}
	fmt.Println()
}
