package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// SessionRepo persists session documents keyed by (userID, nicheKey).
// Documents are opaque JSON; the session package owns their shape.
// Writes are last-write-wins full-document replacements.
type SessionRepo interface {
	// GetSession returns the stored document, or nil if none exists.
	GetSession(ctx context.Context, userID, nicheKey string) (json.RawMessage, error)

	// PutSession stores the full document, replacing any existing one.
	PutSession(ctx context.Context, userID, nicheKey string, doc json.RawMessage) error
}

// ProgressEventData is one completion ledger entry.
type ProgressEventData struct {
	ClientCompletionID string
	UserID             string
	Niche              string
	CustomNiche        string
}

// ProgressRepo is the append-only, idempotent completion ledger.
type ProgressRepo interface {
	// InsertIfAbsent writes the event unless a row with the same
	// ClientCompletionID already exists. The unique constraint on the id
	// is the enforcement point; concurrent duplicates are safe.
	InsertIfAbsent(ctx context.Context, data ProgressEventData) error

	// Count returns the number of events for (userID, niche, customNiche).
	Count(ctx context.Context, userID, niche, customNiche string) (int, error)
}

// DrillSetSnapshotData is one immutable generation audit record.
type DrillSetSnapshotData struct {
	UserID    string
	NicheKey  string
	Struggle  string
	Objective string
	Mode      string
	Drills    json.RawMessage
}

// SnapshotRepo records drill-set snapshots for audit/replay and quota.
type SnapshotRepo interface {
	// Append stores a new snapshot. Snapshots are never mutated.
	Append(ctx context.Context, data DrillSetSnapshotData) error

	// CountSince returns how many snapshots the user generated at or
	// after the given time. Used for the free-tier daily limit.
	CountSince(ctx context.Context, userID string, since time.Time) (int, error)
}

// LLMRequestEventData captures one generation call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// UsageStats aggregates generation calls by purpose.
type UsageStats struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to generation-call events.
type EventRepo interface {
	// AppendLLMRequest records a generation API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// UsageByPurpose summarizes recorded calls per purpose label.
	UsageByPurpose(ctx context.Context) ([]UsageStats, error)
}

// ErrDegraded reports that the store could not serve a write even after a
// schema-patch retry. Non-critical reads never return it; they degrade to
// empty results instead.
type ErrDegraded struct {
	Op  string
	Err error
}

func (e *ErrDegraded) Error() string {
	return fmt.Sprintf("persistence degraded during %s: %v", e.Op, e.Err)
}

func (e *ErrDegraded) Unwrap() error { return e.Err }
