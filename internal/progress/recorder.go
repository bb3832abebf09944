// Package progress records drill-set completions idempotently and
// answers the running-total query that powers completion feedback.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/drillwise/drillwise/internal/store"
)

// Result is the outcome of recording one completion.
type Result struct {
	// Total is the running completion count for (user, niche).
	Total int

	// Degraded is true when the store could not serve the count and Total
	// is a locally computed fallback. The UI still gets a number.
	Degraded bool
}

type cached struct {
	total  int
	lastID string
}

// Recorder is the idempotent completion ledger front. The unique
// constraint on the client completion id is the concurrency control;
// retried calls with the same id always produce the same total.
type Recorder struct {
	repo   store.ProgressRepo
	logger *slog.Logger

	mu     sync.Mutex
	counts map[string]cached
}

// NewRecorder builds a recorder over the progress ledger.
func NewRecorder(repo store.ProgressRepo, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{repo: repo, logger: logger, counts: make(map[string]cached)}
}

func countKey(userID, niche, customNiche string) string {
	return userID + "\x00" + niche + "\x00" + customNiche
}

// Record inserts the completion event unless the id was already recorded,
// then returns the count for (userID, niche, customNiche). Insert and
// count failures degrade to a locally computed total instead of leaving
// the caller empty-handed.
func (r *Recorder) Record(ctx context.Context, userID, niche, customNiche, clientCompletionID string) (Result, error) {
	if clientCompletionID == "" {
		return Result{}, fmt.Errorf("clientCompletionId is required")
	}
	if niche == "" {
		return Result{}, fmt.Errorf("niche is required")
	}

	insertErr := r.repo.InsertIfAbsent(ctx, store.ProgressEventData{
		ClientCompletionID: clientCompletionID,
		UserID:             userID,
		Niche:              niche,
		CustomNiche:        customNiche,
	})
	if insertErr != nil {
		r.logger.Warn("completion insert failed",
			"user", userID, "niche", niche, "error", insertErr)
	}

	key := countKey(userID, niche, customNiche)

	count, countErr := r.repo.Count(ctx, userID, niche, customNiche)
	if countErr == nil {
		r.mu.Lock()
		r.counts[key] = cached{total: count, lastID: clientCompletionID}
		r.mu.Unlock()
		return Result{Total: count}, nil
	}

	r.logger.Warn("completion count failed, using fallback",
		"user", userID, "niche", niche, "error", countErr)
	return Result{Total: r.fallback(key, clientCompletionID), Degraded: true}, nil
}

// fallback computes a best-effort total from the last successful count.
// Repeats of the last recorded id do not bump the number, keeping the
// idempotence contract even while degraded.
func (r *Recorder) fallback(key, clientCompletionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.counts[key]
	if c.lastID == clientCompletionID {
		return c.total
	}
	c.total++
	c.lastID = clientCompletionID
	r.counts[key] = c
	return c.total
}
