package api

import (
	"encoding/json"
	"net/http"

	"github.com/drillwise/drillwise/internal/checklist"
	"github.com/drillwise/drillwise/internal/identity"
	"github.com/drillwise/drillwise/internal/session"
)

type sessionStartRequest struct {
	NicheKey     string `json:"nicheKey"`
	NicheContext string `json:"nicheContext"`
	Struggle     string `json:"struggle"`
}

func (s *Server) handleSessionStart(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	var req sessionStartRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.engine.StartSession(r.Context(), id.UserID, req.NicheKey, req.NicheContext, req.Struggle)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type generateDrillsRequest struct {
	NicheKey           string           `json:"nicheKey"`
	NicheContext       string           `json:"nicheContext,omitempty"`
	Struggle           string           `json:"struggle,omitempty"`
	Objective          string           `json:"objective,omitempty"`
	PracticePreference string           `json:"practicePreference"`
	Cursor             string           `json:"cursor,omitempty"`
	ExistingCount      int              `json:"existingCount,omitempty"`
	ChecklistSetup     *checklist.Setup `json:"checklistSetup,omitempty"`
}

func (s *Server) handleGenerateDrills(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	var req generateDrillsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.engine.GenerateDrills(r.Context(), id.UserID, req.NicheKey, session.GenerateRequest{
		Struggle:           req.Struggle,
		Objective:          req.Objective,
		PracticePreference: req.PracticePreference,
		NicheContext:       req.NicheContext,
		Cursor:             req.Cursor,
		ExistingCount:      req.ExistingCount,
		ChecklistSetup:     req.ChecklistSetup,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	for _, warning := range res.Warnings {
		s.logger.Warn("drill accepted below quality bar",
			"user", id.UserID, "niche", req.NicheKey, "reason", warning)
	}
	writeJSON(w, http.StatusOK, res)
}

type submitAnswerRequest struct {
	NicheKey       string `json:"nicheKey"`
	Index          int    `json:"index"`
	Answer         string `json:"answer,omitempty"`
	SelectedOption *int   `json:"selectedOption,omitempty"`
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	var req submitAnswerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	ev, err := s.engine.SubmitAnswer(r.Context(), id.UserID, req.NicheKey, req.Index, req.Answer, req.SelectedOption)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

type nicheRequest struct {
	NicheKey string `json:"nicheKey"`
}

func (s *Server) handleContinue(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	var req nicheRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	index, err := s.engine.Continue(r.Context(), id.UserID, req.NicheKey)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"currentIndex": index})
}

type checklistStepRequest struct {
	NicheKey string `json:"nicheKey"`
	// Action is "done" (advance) or "back".
	Action string `json:"action"`
}

func (s *Server) handleChecklistStep(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	var req checklistStepRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	delta := 0
	switch req.Action {
	case "done":
		delta = 1
	case "back":
		delta = -1
	default:
		writeError(w, &session.ValidationError{Field: "action", Detail: "must be done or back"})
		return
	}

	cursor, err := s.engine.ChecklistStep(r.Context(), id.UserID, req.NicheKey, delta)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"cursor": cursor})
}

type progressCompleteRequest struct {
	Niche              string `json:"niche"`
	CustomNiche        string `json:"customNiche,omitempty"`
	ClientCompletionID string `json:"clientCompletionId"`
}

func (s *Server) handleProgressComplete(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	var req progressCompleteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ClientCompletionID == "" {
		writeError(w, &session.ValidationError{Field: "clientCompletionId"})
		return
	}
	if req.Niche == "" {
		writeError(w, &session.ValidationError{Field: "niche"})
		return
	}

	res, err := s.recorder.Record(r.Context(), id.UserID, req.Niche, req.CustomNiche, req.ClientCompletionID)
	if err != nil {
		writeError(w, err)
		return
	}

	s.engine.MarkCompleted(r.Context(), id.UserID, req.Niche, req.ClientCompletionID)

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":                    true,
		"niche":                 req.Niche,
		"totalCompletedInNiche": res.Total,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	nicheKey := r.URL.Query().Get("niche")
	if nicheKey == "" {
		writeError(w, &session.ValidationError{Field: "niche"})
		return
	}

	raw, err := s.engine.Snapshot(r.Context(), id.UserID, nicheKey)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

type putSessionRequest struct {
	NicheKey string          `json:"nicheKey"`
	Session  json.RawMessage `json:"session"`
}

func (s *Server) handlePutSession(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	var req putSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.NicheKey == "" {
		writeError(w, &session.ValidationError{Field: "nicheKey"})
		return
	}
	if len(req.Session) == 0 {
		writeError(w, &session.ValidationError{Field: "session"})
		return
	}

	if err := s.engine.Restore(r.Context(), id.UserID, req.NicheKey, req.Session); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	var req nicheRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.NicheKey == "" {
		writeError(w, &session.ValidationError{Field: "nicheKey"})
		return
	}

	if err := s.engine.Reset(r.Context(), id.UserID, req.NicheKey); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
