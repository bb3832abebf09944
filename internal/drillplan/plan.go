// Package drillplan maps a practice mode to a generation plan: how many
// drills a session is working toward, how many to generate per call, and
// when to stop offering more.
package drillplan

import "fmt"

// Mode is the user-chosen practice mode.
type Mode string

const (
	ModeChecklist   Mode = "checklist"
	ModeTest        Mode = "test"
	ModeCoaching    Mode = "coaching"
	ModeWalkthrough Mode = "walkthrough"
)

// StopRule decides when a session stops offering continuation.
type StopRule string

const (
	// StopFixed: one generation, no continuation (checklist, walkthrough).
	StopFixed StopRule = "fixed"

	// StopMastery: stop after two sets at >=80% accuracy.
	StopMastery StopRule = "mastery_2_sets_80"

	// StopUser: the user decides when they're done.
	StopUser StopRule = "user_stop"

	// StopScenarioComplete is reserved for multi-part walkthroughs.
	StopScenarioComplete StopRule = "scenario_complete"
)

// Plan describes the generation budget for one mode.
type Plan struct {
	Mode        Mode     `json:"mode"`
	TargetCount int      `json:"targetCount"`
	ChunkSize   int      `json:"chunkSize"`
	StopRule    StopRule `json:"stopRule"`
}

// preferenceModes maps the A-D clarification keys to modes.
var preferenceModes = map[string]Mode{
	"A": ModeChecklist,
	"B": ModeTest,
	"C": ModeCoaching,
	"D": ModeWalkthrough,
}

// ParsePreference resolves a clarification option key (A-D) or a mode name
// to a Mode.
func ParsePreference(pref string) (Mode, error) {
	if m, ok := preferenceModes[pref]; ok {
		return m, nil
	}
	switch Mode(pref) {
	case ModeChecklist, ModeTest, ModeCoaching, ModeWalkthrough:
		return Mode(pref), nil
	}
	return "", fmt.Errorf("unknown practice preference %q", pref)
}

// Resolve returns the plan for a mode. Pure: same mode, same plan.
func Resolve(mode Mode) Plan {
	switch mode {
	case ModeChecklist:
		return Plan{Mode: mode, TargetCount: 1, ChunkSize: 1, StopRule: StopFixed}
	case ModeWalkthrough:
		return Plan{Mode: mode, TargetCount: 3, ChunkSize: 3, StopRule: StopFixed}
	case ModeTest:
		return Plan{Mode: mode, TargetCount: 10, ChunkSize: 5, StopRule: StopMastery}
	case ModeCoaching:
		return Plan{Mode: mode, TargetCount: 12, ChunkSize: 4, StopRule: StopUser}
	default:
		// Unknown modes behave like a single open-ended set.
		return Plan{Mode: mode, TargetCount: 4, ChunkSize: 4, StopRule: StopUser}
	}
}

// Continuation computes the continuation state after existingCount drills
// have been generated. The cursor is an opaque offset marker; callers only
// compare or replace it.
func Continuation(p Plan, existingCount int) (hasMore bool, nextCursor string) {
	if p.StopRule == StopFixed {
		return false, ""
	}
	if existingCount >= p.TargetCount {
		return false, ""
	}
	return true, fmt.Sprintf("offset:%d", existingCount)
}
