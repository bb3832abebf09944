package drills

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/drillwise/drillwise/internal/drillplan"
	"github.com/drillwise/drillwise/internal/llm"
)

const shortScenario = "You bought an ad for $50 and it flopped."

func scenarioSetJSON(scenario, question string) string {
	return fmt.Sprintf(`{"drills":[{"kind":"scenario","topic":"ads","scenario":%q,"question":%q}]}`, scenario, question)
}

func scenarioItemJSON(scenario, question string) string {
	return fmt.Sprintf(`{"kind":"scenario","topic":"ads","scenario":%q,"question":%q}`, scenario, question)
}

func TestOrchestratorGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: `{"drills":[{"kind":"open","topic":"hooks","question":"Write a hook.","correctAnswer":"Lead with the number."}]}`,
	})
	o := NewOrchestrator(mock, DefaultConfig(), nil)

	res, err := o.Generate(context.Background(), GenerateInput{
		Mode:         drillplan.ModeCoaching,
		NicheContext: "faceless reels",
		Struggle:     "hooks",
		Objective:    "write hooks that stop the scroll",
		ChunkSize:    4,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
	if len(res.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(res.Items))
	}
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", res.Warnings)
	}
	if res.Items[0].Question != "Write a hook." {
		t.Errorf("question = %q", res.Items[0].Question)
	}
}

func TestOrchestratorGenerateParseError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "I can't help with that."})
	o := NewOrchestrator(mock, DefaultConfig(), nil)

	_, err := o.Generate(context.Background(), GenerateInput{Mode: drillplan.ModeCoaching, ChunkSize: 4})
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}

func TestOrchestratorGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	o := NewOrchestrator(mock, DefaultConfig(), nil)

	_, err := o.Generate(context.Background(), GenerateInput{Mode: drillplan.ModeCoaching, ChunkSize: 4})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestOrchestratorRepairsScenarioOnce(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: scenarioSetJSON(shortScenario, "What next?")},
		llm.MockResponse{Text: scenarioItemJSON(richScenario, "With $200 of budget left, what do you change first?")},
	)
	o := NewOrchestrator(mock, DefaultConfig(), nil)

	res, err := o.Generate(context.Background(), GenerateInput{
		Mode:      drillplan.ModeWalkthrough,
		Struggle:  "panic selling",
		ChunkSize: 1,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2 (one generation, one repair)", mock.CallCount())
	}
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v, want none after successful repair", res.Warnings)
	}
	if res.Items[0].Scenario != richScenario {
		t.Error("repaired scenario not adopted")
	}
	if !strings.HasPrefix(res.Items[0].Question, "Scenario: ") {
		t.Errorf("question not normalized: %q", res.Items[0].Question)
	}
}

func TestOrchestratorKeepsOriginalWhenRepairStillInvalid(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: scenarioSetJSON(shortScenario, "What next?")},
		llm.MockResponse{Text: scenarioItemJSON(shortScenario, "What next?")},
	)
	o := NewOrchestrator(mock, DefaultConfig(), nil)

	res, err := o.Generate(context.Background(), GenerateInput{
		Mode:      drillplan.ModeWalkthrough,
		ChunkSize: 1,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2 (repair attempted exactly once)", mock.CallCount())
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", res.Warnings)
	}
	if res.Items[0].Scenario != shortScenario {
		t.Error("original item should survive a failed repair")
	}
}

func TestOrchestratorKeepsOriginalWhenRepairCallFails(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: scenarioSetJSON(shortScenario, "What next?")},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	o := NewOrchestrator(mock, DefaultConfig(), nil)

	res, err := o.Generate(context.Background(), GenerateInput{
		Mode:      drillplan.ModeWalkthrough,
		ChunkSize: 1,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", res.Warnings)
	}
	if res.Items[0].Scenario != shortScenario {
		t.Error("original item should survive a failed repair call")
	}
}
