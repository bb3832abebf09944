package drills

import (
	"fmt"
	"strings"
)

// defaultScenarioPrompt is appended when a scenario item arrives without a
// usable question.
const defaultScenarioPrompt = "Walk through how you would handle this, step by step."

// fallbackQuestion is the fixed string used when an item carries no usable
// text at all. DisplayText is total: it always returns something renderable.
const fallbackQuestion = "Work through this drill and note your reasoning."

// Normalize fills item.Question with flattened display text so the UI can
// render any item regardless of underlying shape. Pure and total.
func Normalize(item *DrillItem) {
	item.Question = DisplayText(item)
}

// DisplayText synthesizes the flattened question string for an item.
func DisplayText(item *DrillItem) string {
	if item == nil {
		return fallbackQuestion
	}

	switch item.Kind {
	case KindScenario:
		if item.Scenario == "" {
			break
		}
		q := strings.TrimSpace(item.Question)
		if q == "" {
			q = defaultScenarioPrompt
		}
		return fmt.Sprintf("Scenario: %s\n\n%s", item.Scenario, q)

	case KindChecklist:
		if len(item.Items) == 0 {
			break
		}
		var b strings.Builder
		title := item.Title
		if title == "" {
			title = "Your checklist"
		}
		b.WriteString(title)
		for i, step := range item.Items {
			fmt.Fprintf(&b, "\n%d. %s", i+1, step.Title)
		}
		return b.String()
	}

	if q := strings.TrimSpace(item.Question); q != "" {
		return q
	}
	return fallbackQuestion
}
