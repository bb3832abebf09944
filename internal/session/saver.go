package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// DefaultSaveInterval is the debounce window for coalesced saves.
const DefaultSaveInterval = 500 * time.Millisecond

type sessionWriter interface {
	PutSession(ctx context.Context, userID, nicheKey string, doc json.RawMessage) error
}

type pendingSave struct {
	userID   string
	nicheKey string
	raw      json.RawMessage
}

// Saver is the coalescing save scheduler. Schedule serializes the
// document immediately and queues it; within one flush window only the
// latest document per session survives. Critical writes through at once,
// bypassing the queue, for transitions too important to lose (new
// drills, mode chosen).
type Saver struct {
	writer   sessionWriter
	interval time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	pending map[string]pendingSave
	stop    chan struct{}
	done    chan struct{}
}

// NewSaver builds a saver; Run must be called for debounced saves to
// flush.
func NewSaver(writer sessionWriter, interval time.Duration, logger *slog.Logger) *Saver {
	if interval <= 0 {
		interval = DefaultSaveInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Saver{
		writer:   writer,
		interval: interval,
		logger:   logger,
		pending:  make(map[string]pendingSave),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Schedule queues a save of the document as it is right now. The caller
// must hold the session lock so the serialized form is consistent.
func (s *Saver) Schedule(userID, nicheKey string, doc *Doc) {
	raw, err := json.Marshal(doc)
	if err != nil {
		s.logger.Error("session does not serialize, save dropped",
			"user", userID, "niche", nicheKey, "error", err)
		return
	}

	s.mu.Lock()
	s.pending[sessionKey(userID, nicheKey)] = pendingSave{
		userID: userID, nicheKey: nicheKey, raw: raw,
	}
	s.mu.Unlock()
}

// Critical saves the document immediately and drops any queued save for
// the same session. Errors are logged, not returned: a failed save never
// blocks the practice loop.
func (s *Saver) Critical(ctx context.Context, userID, nicheKey string, doc *Doc) {
	raw, err := json.Marshal(doc)
	if err != nil {
		s.logger.Error("session does not serialize, save dropped",
			"user", userID, "niche", nicheKey, "error", err)
		return
	}

	s.mu.Lock()
	delete(s.pending, sessionKey(userID, nicheKey))
	s.mu.Unlock()

	if err := s.writer.PutSession(ctx, userID, nicheKey, raw); err != nil {
		s.logger.Warn("critical session save failed",
			"user", userID, "niche", nicheKey, "error", err)
	}
}

// FlushNow writes every queued save immediately.
func (s *Saver) FlushNow(ctx context.Context) {
	s.mu.Lock()
	batch := s.pending
	s.pending = make(map[string]pendingSave)
	s.mu.Unlock()

	for _, p := range batch {
		if err := s.writer.PutSession(ctx, p.userID, p.nicheKey, p.raw); err != nil {
			s.logger.Warn("session save failed",
				"user", p.userID, "niche", p.nicheKey, "error", err)
		}
	}
}

// Run flushes the queue on the debounce interval until Close is called.
func (s *Saver) Run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.FlushNow(ctx)
		case <-s.stop:
			s.FlushNow(ctx)
			return
		case <-ctx.Done():
			s.FlushNow(context.WithoutCancel(ctx))
			return
		}
	}
}

// Close stops the flush loop after one final flush.
func (s *Saver) Close() {
	close(s.stop)
	<-s.done
}
