package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/forgefit/internal/models"
	"github.com/claude/forgefit/internal/progress"
	"github.com/claude/forgefit/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.db.ListPlans(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid plan ID"})
		return
	}

	plan, err := s.db.GetPlan(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout plan not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	uid := userIDFromContext(r)

	var req models.CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	plan, err := s.db.GetPlan(r.Context(), req.WorkoutPlanID)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout plan not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	result, err := s.applyCompletion(r.Context(), uid, plan, req.DurationMinutes)
	if err != nil {
		s.log.Error("completion failed", "user", uid, "plan", plan.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// applyCompletion records the session and folds it into the user's
// progress, returning the reward summary.
func (s *Server) applyCompletion(ctx context.Context, userID int, plan *models.WorkoutPlan, durationMinutes int) (*models.CompletionResult, error) {
	now := time.Now().UTC()
	rec := models.WorkoutSessionRecord{
		ID:              uuid.New(),
		UserID:          userID,
		WorkoutPlanID:   plan.ID,
		Date:            now,
		XPEarned:        plan.XPReward,
		DurationMinutes: durationMinutes,
		Status:          "completed",
	}
	if err := s.db.InsertSession(ctx, rec); err != nil {
		return nil, err
	}

	total, err := s.db.CountSessions(ctx, userID)
	if err != nil {
		return nil, err
	}
	prior, err := s.db.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, result := progress.Apply(prior, plan, total, models.DateOf(now))
	updated.UserID = userID
	if err := s.db.UpsertProgress(ctx, updated); err != nil {
		return nil, err
	}
	return &result, nil
}

// handleWorkoutJourney returns the plan catalog annotated with the user's
// progression (completed plans and the suggested next ones).
func (s *Server) handleWorkoutJourney(w http.ResponseWriter, r *http.Request) {
	uid := userIDFromContext(r)

	plans, err := s.db.ListPlans(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	completed, err := s.db.CompletedPlanIDs(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, progress.Journey(plans, completed))
}

func (s *Server) handleRecentSessions(w http.ResponseWriter, r *http.Request) {
	days := 14
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid days parameter"})
			return
		}
		days = n
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	sessions, err := s.db.RecentSessions(r.Context(), userIDFromContext(r), since)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	p, err := s.db.GetProgress(r.Context(), userIDFromContext(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	p, err := s.db.GetProgress(r.Context(), userIDFromContext(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, progress.Catalog(p.Achievements))
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.db.GetUser(r.Context(), userIDFromContext(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid := userIDFromContext(r)

	var req struct {
		ExperienceLevel string   `json:"experience_level"`
		AvailableDays   []string `json:"available_days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	for _, day := range req.AvailableDays {
		if !validDay(day) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid day of week: " + day})
			return
		}
	}

	if err := s.db.UpdateUserProfile(r.Context(), uid, req.ExperienceLevel, req.AvailableDays); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	user, err := s.db.GetUser(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func validDay(day string) bool {
	switch day {
	case "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday":
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
