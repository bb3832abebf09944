package drills

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseDrillSetOpen(t *testing.T) {
	raw := `{"drills":[{"kind":"open","topic":"hooks","question":"Write a hook for a budgeting reel.","correctAnswer":"Lead with the payoff number.","explanation":"Specific numbers stop the scroll."}]}`

	items, err := parseDrillSet(raw)
	if err != nil {
		t.Fatalf("parseDrillSet: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Kind != KindOpen {
		t.Errorf("kind = %q, want %q", items[0].Kind, KindOpen)
	}
	if items[0].Topic != "hooks" {
		t.Errorf("topic = %q, want hooks", items[0].Topic)
	}
}

func TestParseDrillSetStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"drills\":[{\"kind\":\"open\",\"question\":\"Q\",\"correctAnswer\":\"A\"}]}\n```"

	items, err := parseDrillSet(raw)
	if err != nil {
		t.Fatalf("parseDrillSet: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
}

func TestParseDrillSetRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "here are your drills: 1. practice hooks"},
		{"missing drills array", `{"exercises":[]}`},
		{"empty drills array", `{"drills":[]}`},
		{"open without answer", `{"drills":[{"kind":"open","question":"Q"}]}`},
		{"mc wrong option count", `{"drills":[{"kind":"multiple_choice","question":"Q","options":["a","b","c"],"correctOptionIndex":0}]}`},
		{"mc index out of range", `{"drills":[{"kind":"multiple_choice","question":"Q","options":["a","b","c","d"],"correctOptionIndex":4}]}`},
		{"scenario without text", `{"drills":[{"kind":"scenario","question":"Q"}]}`},
		{"unknown kind", `{"drills":[{"kind":"flashcard","question":"Q"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDrillSet(tt.raw)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
		})
	}
}

func TestParseDrillSetChecklistStepBounds(t *testing.T) {
	set := func(steps int) string {
		var b strings.Builder
		b.WriteString(`{"drills":[{"kind":"checklist","title":"Launch day","items":[`)
		for i := 0; i < steps; i++ {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, `{"title":"Step %d","instruction":"Do step %d","doneWhen":"done"}`, i+1, i+1)
		}
		b.WriteString(`]}]}`)
		return b.String()
	}

	if _, err := parseDrillSet(set(8)); err != nil {
		t.Errorf("8 steps: unexpected error %v", err)
	}
	if _, err := parseDrillSet(set(14)); err != nil {
		t.Errorf("14 steps: unexpected error %v", err)
	}
	if _, err := parseDrillSet(set(7)); err == nil {
		t.Error("7 steps: expected error")
	}
	if _, err := parseDrillSet(set(15)); err == nil {
		t.Error("15 steps: expected error")
	}
}

func TestParseDrillItemRepair(t *testing.T) {
	item, err := parseDrillItem(`{"kind":"open","question":"Q","correctAnswer":"A"}`)
	if err != nil {
		t.Fatalf("parseDrillItem: %v", err)
	}
	if item.Kind != KindOpen {
		t.Errorf("kind = %q, want open", item.Kind)
	}

	if _, err := parseDrillItem("sorry, I cannot produce JSON"); err == nil {
		t.Error("expected error for non-JSON repair")
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"{}", "{}"},
		{"```json\n{}\n```", "{}"},
		{"```\n{}\n```", "{}"},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
