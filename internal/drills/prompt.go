package drills

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/drillwise/drillwise/internal/drillplan"
)

const systemPrompt = `You are a practice coach generating drills that help someone work on a specific struggle within their skill niche.

Rules:
- Respond with a single JSON object: {"drills": [...]}. No markdown, no prose outside the JSON.
- Every drill has "kind" ("open", "multiple_choice", "scenario", "checklist"), a short lowercase "topic" tag, and the fields for its kind.
- "open": question, correctAnswer (a model answer), explanation.
- "multiple_choice": question, options (exactly 4), correctOptionIndex (0-3), explanation. Distractors should reflect real mistakes, not filler.
- "scenario": scenario (at least 200 characters, written in second person, with concrete numbers, platforms, timeframes, metrics, audience, or money), question that references a specific detail from the scenario, contextBullets, constraints, rubric.
- "checklist": title, items (8-14 ordered steps with title, instruction, doneWhen, optional tip), checkpoints.
- Ground every drill in the user's struggle and objective. Use their niche's vocabulary.
- Vary topic tags so weak areas can be tracked across drills.`

// modeKinds maps a practice mode to the drill kind it generates.
var modeKinds = map[drillplan.Mode]DrillKind{
	drillplan.ModeChecklist:   KindChecklist,
	drillplan.ModeTest:        KindMultipleChoice,
	drillplan.ModeCoaching:    KindOpen,
	drillplan.ModeWalkthrough: KindScenario,
}

// buildUserMessage assembles the per-call generation context.
func buildUserMessage(input GenerateInput) string {
	kind := modeKinds[input.Mode]
	if kind == "" {
		kind = KindOpen
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Niche: %s\n", input.NicheContext)
	fmt.Fprintf(&b, "Struggle: %s\n", input.Struggle)
	fmt.Fprintf(&b, "Objective: %s\n", input.Objective)
	fmt.Fprintf(&b, "Drill kind: %s\n", kind)
	fmt.Fprintf(&b, "Number of drills: %d\n", input.ChunkSize)

	b.WriteString("\nSession signals so far:\n")
	if input.SignalsSummary != "" {
		b.WriteString(input.SignalsSummary)
	} else {
		b.WriteString("None")
	}

	if input.Mode == drillplan.ModeChecklist && input.Setup != nil {
		b.WriteString("\n\nChecklist setup answers:\n")
		fmt.Fprintf(&b, "Goal: %s\n", input.Setup.Goal)
		fmt.Fprintf(&b, "Location: %s\n", input.Setup.Location)
		fmt.Fprintf(&b, "Constraints: %s\n", input.Setup.Constraints)
		fmt.Fprintf(&b, "Experience level: %s", input.Setup.Level)
	}

	return b.String()
}

const repairSystemPrompt = `You repair a single practice drill that failed a content-quality check. Respond with one JSON object — the corrected drill with the same "kind" and fields — and nothing else. Keep what was good; fix only what the rejection reason describes.`

// buildRepairMessage assembles the single-item repair context.
func buildRepairMessage(item *DrillItem, reason string, input GenerateInput) string {
	original, err := json.Marshal(item)
	if err != nil {
		original = []byte("{}")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Niche: %s\n", input.NicheContext)
	fmt.Fprintf(&b, "Struggle: %s\n", input.Struggle)
	fmt.Fprintf(&b, "Objective: %s\n\n", input.Objective)
	fmt.Fprintf(&b, "Rejection reason: %s\n\n", reason)
	b.WriteString("Original drill:\n")
	b.Write(original)
	return b.String()
}
