package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestSaverCoalesces(t *testing.T) {
	repo := newMemSessions()
	s := NewSaver(repo, time.Hour, nil)

	d1 := Doc{Phase: PhaseClarify, Struggle: "first"}
	d2 := Doc{Phase: PhaseClarify, Struggle: "second"}
	s.Schedule("u1", "reels", &d1)
	s.Schedule("u1", "reels", &d2)

	if repo.puts != 0 {
		t.Fatalf("puts = %d before flush, want 0", repo.puts)
	}

	s.FlushNow(context.Background())
	if repo.puts != 1 {
		t.Errorf("puts = %d, want 1 coalesced write", repo.puts)
	}

	var got Doc
	_ = json.Unmarshal(repo.docs["u1/reels"], &got)
	if got.Struggle != "second" {
		t.Errorf("struggle = %q, want latest document", got.Struggle)
	}
}

func TestSaverCriticalWritesImmediately(t *testing.T) {
	repo := newMemSessions()
	s := NewSaver(repo, time.Hour, nil)

	stale := Doc{Phase: PhaseClarify, Struggle: "stale"}
	s.Schedule("u1", "reels", &stale)

	fresh := Doc{Phase: PhaseDrills, Struggle: "fresh"}
	s.Critical(context.Background(), "u1", "reels", &fresh)

	if repo.puts != 1 {
		t.Fatalf("puts = %d, want 1", repo.puts)
	}

	// The queued save for the same session was dropped.
	s.FlushNow(context.Background())
	if repo.puts != 1 {
		t.Errorf("puts = %d after flush, want still 1", repo.puts)
	}

	var got Doc
	_ = json.Unmarshal(repo.docs["u1/reels"], &got)
	if got.Struggle != "fresh" {
		t.Errorf("struggle = %q, want critical document", got.Struggle)
	}
}

func TestSaverRunFlushesOnInterval(t *testing.T) {
	repo := newMemSessions()
	s := NewSaver(repo, 10*time.Millisecond, nil)
	go s.Run(context.Background())
	defer s.Close()

	d := Doc{Phase: PhaseClarify}
	s.Schedule("u1", "reels", &d)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		repo.mu.Lock()
		n := repo.puts
		repo.mu.Unlock()
		if n >= 1 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("scheduled save never flushed")
}
