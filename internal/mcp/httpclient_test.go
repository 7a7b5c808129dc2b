package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claude/forgefit/internal/models"
	"github.com/google/uuid"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestHTTPClientListPlans verifies the client parses the plan catalog response.
func TestHTTPClientListPlans(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, []models.WorkoutPlan{
				{ID: uuid.New(), Name: "Quick Start", Difficulty: "Beginner", XPReward: 100},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	plans, err := client.ListPlans(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 1 {
		t.Fatalf("got %d plans, want 1", len(plans))
	}
	if plans[0].Name != "Quick Start" {
		t.Errorf("name=%q, want Quick Start", plans[0].Name)
	}
}

// TestHTTPClientListSchedule verifies calendar entries round-trip with their
// date wire format.
func TestHTTPClientListSchedule(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/schedule/calendar": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, []models.ScheduleEntry{
				{ID: uuid.New(), ScheduledDate: models.NewDate(2026, 3, 2), DayOfWeek: "Monday"},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	entries, err := client.ListSchedule(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if got := entries[0].ScheduledDate.String(); got != "2026-03-02" {
		t.Errorf("scheduled date=%s, want 2026-03-02", got)
	}
}

// TestHTTPClientRecentSessions verifies the since time converts to a days
// query parameter.
func TestHTTPClientRecentSessions(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/sessions/recent": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("days"); got == "" {
				t.Error("missing days query parameter")
			}
			writeTestJSON(t, w, []models.WorkoutSessionRecord{
				{ID: uuid.New(), XPEarned: 100, DurationMinutes: 25, Status: "completed"},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	since := time.Now().AddDate(0, 0, -14)
	sessions, err := client.RecentSessions(context.Background(), 1, since)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].XPEarned != 100 {
		t.Errorf("xp=%d, want 100", sessions[0].XPEarned)
	}
}

// TestHTTPClientErrorStatus verifies non-200 responses become errors.
func TestHTTPClientErrorStatus(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/progress": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	if _, err := client.GetProgress(context.Background(), 1); err == nil {
		t.Error("expected error for 500 response")
	}
}
