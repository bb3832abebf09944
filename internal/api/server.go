// Package api exposes the practice engine over JSON HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/drillwise/drillwise/internal/identity"
	"github.com/drillwise/drillwise/internal/progress"
	"github.com/drillwise/drillwise/internal/session"
)

// Server holds the handler dependencies.
type Server struct {
	engine   *session.Engine
	recorder *progress.Recorder
	verifier identity.Verifier
	logger   *slog.Logger
}

// NewServer wires the HTTP surface.
func NewServer(engine *session.Engine, recorder *progress.Recorder, verifier identity.Verifier, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: engine, recorder: recorder, verifier: verifier, logger: logger}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	r.Get("/healthz", s.handleHealthz)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.authenticate)

		r.Post("/session-start", s.handleSessionStart)
		r.Post("/generate-drills", s.handleGenerateDrills)
		r.Post("/submit-answer", s.handleSubmitAnswer)
		r.Post("/continue", s.handleContinue)
		r.Post("/checklist/step", s.handleChecklistStep)
		r.Post("/progress/complete", s.handleProgressComplete)

		r.Get("/session", s.handleGetSession)
		r.Post("/session", s.handlePutSession)
		r.Post("/session/reset", s.handleResetSession)
	})

	return r
}

// authenticate verifies credentials and stashes the identity.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := s.verifier.Verify(r)
		if err != nil {
			writeError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), id)))
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
