package objective

import (
	"context"
	"strings"
	"testing"

	"github.com/drillwise/drillwise/internal/llm"
)

func TestDerive(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: `{"objective":"Write reel hooks that stop the scroll in the first second.","question":"How do you want to practice? A) checklist, B) test, C) coaching, D) walkthrough"}`,
	})
	d := NewDeriver(mock)

	got, err := d.Derive(context.Background(), "faceless reels", "my hooks are weak")
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if !strings.Contains(got.Objective, "hooks") {
		t.Errorf("objective = %q", got.Objective)
	}
	if got.Question == "" {
		t.Error("question empty")
	}
}

func TestDeriveFallsBackOnBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Sure! Your objective is..."})
	d := NewDeriver(mock)

	got, err := d.Derive(context.Background(), "day trading", "I panic sell")
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if !strings.Contains(got.Objective, "I panic sell") {
		t.Errorf("fallback objective = %q, want struggle echoed", got.Objective)
	}
	if !strings.Contains(got.Question, "A)") {
		t.Errorf("fallback question = %q, want lettered options", got.Question)
	}
}

func TestDerivePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	d := NewDeriver(mock)

	if _, err := d.Derive(context.Background(), "n", "s"); err == nil {
		t.Fatal("expected error")
	}
}
