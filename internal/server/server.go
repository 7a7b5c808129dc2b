package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/forgefit/internal/clock"
	"github.com/claude/forgefit/internal/schedule"
	"github.com/claude/forgefit/internal/storage"
	"github.com/go-chi/chi/v5"
	"tailscale.com/client/local"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db      *storage.DB
	gateway *schedule.Gateway
	log     *slog.Logger
	ts      *local.Client
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, log *slog.Logger) *Server {
	s := &Server{
		db:      db,
		gateway: schedule.New(clock.System{}),
		log:     log,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// SetTailscale switches identity resolution from the dev fallback to
// tsnet WhoIs lookups.
func (s *Server) SetTailscale(lc *local.Client) {
	s.ts = lc
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)
	s.router.Use(s.identity)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/me", s.handleMe)
		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handleUpdateProfile)

		r.Get("/plans", s.handleListPlans)
		r.Get("/plans/{id}", s.handleGetPlan)

		r.Get("/schedule/calendar", s.handleCalendar)
		r.Post("/schedule/generate", s.handleGenerateSchedule)
		r.Delete("/schedule/reset", s.handleResetSchedule)
		r.Post("/schedule/{id}/complete", s.handleCompleteScheduled)

		r.Post("/workouts/complete", s.handleCompleteWorkout)
		r.Get("/workouts/journey", s.handleWorkoutJourney)
		r.Get("/sessions/recent", s.handleRecentSessions)

		r.Get("/progress", s.handleProgress)
		r.Get("/achievements", s.handleAchievements)
	})
}
