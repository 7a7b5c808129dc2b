package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/claude/forgefit/internal/models"
	"github.com/claude/forgefit/internal/planner"
	"github.com/claude/forgefit/internal/schedule"
	"github.com/claude/forgefit/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleCalendar returns the user's schedule ordered by date, each entry
// enriched with its plan details and the server-side lock hint. Clients
// re-derive the lock state from the date; the hint is advisory.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	uid := userIDFromContext(r)

	entries, err := s.db.ListSchedule(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	plans, err := s.db.ListPlans(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	byID := make(map[uuid.UUID]models.WorkoutPlan, len(plans))
	for _, p := range plans {
		byID[p.ID] = p
	}

	for i := range entries {
		e := &entries[i]
		e.IsLocked = s.gateway.LockState(*e) == schedule.Locked
		if e.IsRestDay {
			e.WorkoutDetails = &models.WorkoutPlan{Name: "Rest Day", Difficulty: "Recovery"}
			continue
		}
		if plan, ok := byID[e.WorkoutPlanID]; ok {
			e.WorkoutDetails = &plan
		}
	}

	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGenerateSchedule(w http.ResponseWriter, r *http.Request) {
	uid := userIDFromContext(r)

	user, err := s.db.GetUser(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	plans, err := s.db.ListPlans(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	entries, err := planner.Generate(user, plans, models.DateOf(time.Now().UTC()))
	if errors.Is(err, planner.ErrNoAvailableDays) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no available days set; update your profile first"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if err := s.db.ReplaceSchedule(r.Context(), uid, entries); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"scheduled_count": len(entries),
	})
}

func (s *Server) handleResetSchedule(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.db.DeleteSchedule(r.Context(), userIDFromContext(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"deleted_count": deleted,
	})
}

// handleCompleteScheduled marks one schedule entry completed and applies
// the same reward path as a direct workout completion.
func (s *Server) handleCompleteScheduled(w http.ResponseWriter, r *http.Request) {
	uid := userIDFromContext(r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid schedule entry ID"})
		return
	}

	var req struct {
		DurationMinutes int `json:"duration_minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	entry, err := s.db.GetScheduleEntry(r.Context(), uid, id)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "scheduled workout not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if entry.IsRestDay {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cannot complete a rest day"})
		return
	}

	plan, err := s.db.GetPlan(r.Context(), entry.WorkoutPlanID)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout plan not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if err := s.db.MarkScheduleCompleted(r.Context(), uid, id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	result, err := s.applyCompletion(r.Context(), uid, plan, req.DurationMinutes)
	if err != nil {
		s.log.Error("scheduled completion failed", "user", uid, "entry", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}
