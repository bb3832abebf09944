package drills

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/drillwise/drillwise/internal/checklist"
)

// drillSetOutput is the raw generation response before validation.
type drillSetOutput struct {
	Drills []DrillItem `json:"drills"`
}

// parseDrillSet turns raw model text into validated drill items. Everything
// that fails here becomes a ParseError — nothing loosely-typed ever reaches
// session state.
func parseDrillSet(raw string) ([]DrillItem, error) {
	text := stripCodeFence(raw)

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, &ParseError{Reason: "response is not valid JSON", Err: err}
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, &ParseError{Reason: "drill set schema unavailable", Err: err}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ParseError{Reason: "response missing a usable drills array", Err: err}
	}

	var out drillSetOutput
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, &ParseError{Reason: "drills array does not decode", Err: err}
	}

	for i := range out.Drills {
		if err := validateStructure(&out.Drills[i]); err != nil {
			return nil, err
		}
	}

	return out.Drills, nil
}

// parseDrillItem decodes a single repaired item.
func parseDrillItem(raw string) (*DrillItem, error) {
	text := stripCodeFence(raw)

	var item DrillItem
	if err := json.Unmarshal([]byte(text), &item); err != nil {
		return nil, &ParseError{Reason: "repaired item is not valid JSON", Err: err}
	}
	if err := validateStructure(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// validateStructure enforces the per-kind shape contracts.
func validateStructure(item *DrillItem) error {
	switch item.Kind {
	case KindOpen:
		if item.Question == "" {
			return &ParseError{Reason: "open drill missing question"}
		}
		if item.CorrectAnswer == "" {
			return &ParseError{Reason: "open drill missing correctAnswer"}
		}
	case KindMultipleChoice:
		if item.Question == "" {
			return &ParseError{Reason: "multiple_choice drill missing question"}
		}
		if len(item.Options) != 4 {
			return &ParseError{Reason: fmt.Sprintf("multiple_choice drill has %d options, need 4", len(item.Options))}
		}
		if item.CorrectOptionIndex < 0 || item.CorrectOptionIndex > 3 {
			return &ParseError{Reason: fmt.Sprintf("correctOptionIndex %d out of range [0,3]", item.CorrectOptionIndex)}
		}
	case KindScenario:
		if item.Scenario == "" {
			return &ParseError{Reason: "scenario drill missing scenario text"}
		}
	case KindChecklist:
		if len(item.Items) < checklist.MinSteps || len(item.Items) > checklist.MaxSteps {
			return &ParseError{Reason: fmt.Sprintf(
				"checklist has %d steps, need %d-%d", len(item.Items), checklist.MinSteps, checklist.MaxSteps)}
		}
		for i, step := range item.Items {
			if step.Title == "" || step.Instruction == "" {
				return &ParseError{Reason: fmt.Sprintf("checklist step %d missing title or instruction", i+1)}
			}
		}
	default:
		return &ParseError{Reason: fmt.Sprintf("unknown drill kind %q", item.Kind)}
	}
	return nil
}

// stripCodeFence removes a wrapping markdown fence, which models add even
// when told not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
