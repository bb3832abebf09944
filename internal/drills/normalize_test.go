package drills

import (
	"strings"
	"testing"
)

func TestDisplayTextScenario(t *testing.T) {
	item := &DrillItem{Kind: KindScenario, Scenario: "You missed three posts this week.", Question: "Which post do you make up first?"}
	got := DisplayText(item)
	if !strings.HasPrefix(got, "Scenario: You missed three posts") {
		t.Errorf("got %q", got)
	}
	if !strings.HasSuffix(got, "Which post do you make up first?") {
		t.Errorf("got %q", got)
	}
}

func TestDisplayTextScenarioDefaultPrompt(t *testing.T) {
	item := &DrillItem{Kind: KindScenario, Scenario: "You missed three posts this week."}
	got := DisplayText(item)
	if !strings.Contains(got, defaultScenarioPrompt) {
		t.Errorf("got %q, want default prompt appended", got)
	}
}

func TestDisplayTextChecklist(t *testing.T) {
	item := &DrillItem{
		Kind:  KindChecklist,
		Title: "Launch day",
		Items: []ChecklistStep{
			{Title: "Pick the offer"},
			{Title: "Write the post"},
		},
	}
	got := DisplayText(item)
	want := "Launch day\n1. Pick the offer\n2. Write the post"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDisplayTextTotal(t *testing.T) {
	tests := []struct {
		name string
		item *DrillItem
	}{
		{"nil item", nil},
		{"empty item", &DrillItem{}},
		{"scenario without text", &DrillItem{Kind: KindScenario}},
		{"checklist without steps", &DrillItem{Kind: KindChecklist, Title: "T"}},
		{"whitespace question", &DrillItem{Kind: KindOpen, Question: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayText(tt.item); got == "" {
				t.Error("DisplayText returned empty string")
			}
		})
	}
}

func TestNormalizeFillsQuestion(t *testing.T) {
	item := &DrillItem{Kind: KindScenario, Scenario: "You lost a client today.", Question: "What do you send the client?"}
	Normalize(item)
	if !strings.HasPrefix(item.Question, "Scenario: ") {
		t.Errorf("question = %q", item.Question)
	}
}
