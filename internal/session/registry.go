package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/drillwise/drillwise/internal/signals"
	"github.com/drillwise/drillwise/internal/store"
)

// Session is one live (user, niche) session. The mutex serializes all
// access to the document; genToken marks the generation call allowed to
// apply its result.
type Session struct {
	UserID   string
	NicheKey string

	mu       sync.Mutex
	doc      Doc
	genToken string
}

// Registry is the keyed get-or-create session store. First access for a
// key loads the persisted document; afterward the in-memory session is
// authoritative and saves flow one way, out.
type Registry struct {
	repo   store.SessionRepo
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry builds a registry over the persisted session repo.
func NewRegistry(repo store.SessionRepo, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		repo:     repo,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

func sessionKey(userID, nicheKey string) string {
	return userID + "\x00" + nicheKey
}

// Get returns the session for (userID, nicheKey), creating it from the
// persisted document or empty on first access. A document that fails to
// decode starts the session fresh rather than blocking the user.
func (r *Registry) Get(ctx context.Context, userID, nicheKey string) *Session {
	key := sessionKey(userID, nicheKey)

	r.mu.Lock()
	if s, ok := r.sessions[key]; ok {
		r.mu.Unlock()
		return s
	}
	r.mu.Unlock()

	doc := r.load(ctx, userID, nicheKey)

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[key]; ok {
		return s
	}
	s := &Session{UserID: userID, NicheKey: nicheKey, doc: doc}
	r.sessions[key] = s
	return s
}

func (r *Registry) load(ctx context.Context, userID, nicheKey string) Doc {
	raw, err := r.repo.GetSession(ctx, userID, nicheKey)
	if err != nil {
		r.logger.Warn("session load failed, starting empty",
			"user", userID, "niche", nicheKey, "error", err)
		return newDoc()
	}
	if raw == nil {
		return newDoc()
	}

	var doc Doc
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.logger.Warn("stored session does not decode, starting empty",
			"user", userID, "niche", nicheKey, "error", err)
		return newDoc()
	}
	if doc.Phase == "" {
		doc.Phase = PhaseIdle
	}
	if doc.Signals == nil {
		doc.Signals = signals.New()
	}
	return doc
}
