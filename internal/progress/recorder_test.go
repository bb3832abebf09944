package progress

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/drillwise/drillwise/internal/store"
)

type memLedger struct {
	mu       sync.Mutex
	events   map[string]store.ProgressEventData
	countErr error
}

func newMemLedger() *memLedger {
	return &memLedger{events: make(map[string]store.ProgressEventData)}
}

func (m *memLedger) InsertIfAbsent(_ context.Context, data store.ProgressEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[data.ClientCompletionID]; ok {
		return nil
	}
	m.events[data.ClientCompletionID] = data
	return nil
}

func (m *memLedger) Count(_ context.Context, userID, niche, customNiche string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countErr != nil {
		return 0, m.countErr
	}
	n := 0
	for _, e := range m.events {
		if e.UserID == userID && e.Niche == niche && e.CustomNiche == customNiche {
			n++
		}
	}
	return n, nil
}

func TestRecordIdempotent(t *testing.T) {
	r := NewRecorder(newMemLedger(), nil)
	ctx := context.Background()

	first, err := r.Record(ctx, "u1", "trading", "", "cc-1")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	second, err := r.Record(ctx, "u1", "trading", "", "cc-1")
	if err != nil {
		t.Fatalf("Record retry: %v", err)
	}
	if first.Total != 1 || second.Total != 1 {
		t.Errorf("totals = %d, %d; want 1 both times", first.Total, second.Total)
	}

	third, _ := r.Record(ctx, "u1", "trading", "", "cc-2")
	if third.Total != 2 {
		t.Errorf("total = %d, want 2", third.Total)
	}
}

func TestRecordScopesByNiche(t *testing.T) {
	r := NewRecorder(newMemLedger(), nil)
	ctx := context.Background()

	if _, err := r.Record(ctx, "u1", "trading", "", "cc-1"); err != nil {
		t.Fatal(err)
	}
	res, err := r.Record(ctx, "u1", "fitness", "", "cc-2")
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 {
		t.Errorf("fitness total = %d, want 1", res.Total)
	}
}

func TestRecordFallbackCount(t *testing.T) {
	ledger := newMemLedger()
	r := NewRecorder(ledger, nil)
	ctx := context.Background()

	// Establish a known count, then degrade the store.
	if _, err := r.Record(ctx, "u1", "trading", "", "cc-1"); err != nil {
		t.Fatal(err)
	}
	ledger.countErr = errors.New("no such table: progress_events")

	res, err := r.Record(ctx, "u1", "trading", "", "cc-2")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !res.Degraded {
		t.Error("want degraded flag")
	}
	if res.Total != 2 {
		t.Errorf("fallback total = %d, want 2", res.Total)
	}

	// Retrying the same id while degraded does not double-count.
	retry, _ := r.Record(ctx, "u1", "trading", "", "cc-2")
	if retry.Total != 2 {
		t.Errorf("retry total = %d, want 2", retry.Total)
	}
}

func TestRecordValidation(t *testing.T) {
	r := NewRecorder(newMemLedger(), nil)

	if _, err := r.Record(context.Background(), "u1", "trading", "", ""); err == nil {
		t.Error("want error for missing clientCompletionId")
	}
	if _, err := r.Record(context.Background(), "u1", "", "", "cc-1"); err == nil {
		t.Error("want error for missing niche")
	}
}
