// Package session owns the per-(user, niche) practice session: phase
// transitions, drill state, answer history, and persistence scheduling.
// All mutation goes through the Engine's typed transitions; nothing else
// touches a Doc.
package session

import (
	"github.com/drillwise/drillwise/internal/checklist"
	"github.com/drillwise/drillwise/internal/drillplan"
	"github.com/drillwise/drillwise/internal/drills"
	"github.com/drillwise/drillwise/internal/signals"
)

// Phase is the session's position in the practice flow.
type Phase string

const (
	// PhaseIdle: no objective yet.
	PhaseIdle Phase = "idle"

	// PhaseClarify: objective derived, mode choice pending.
	PhaseClarify Phase = "clarify"

	// PhaseDrills: drills generated, user answering.
	PhaseDrills Phase = "drills"
)

// ClarificationOption is one lettered mode choice.
type ClarificationOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Clarification is the pending mode-choice prompt.
type Clarification struct {
	Question string                `json:"question"`
	Options  []ClarificationOption `json:"options"`
}

// Doc is the full session document, serialized wholesale on every save.
// Keyed externally by (userID, nicheKey).
type Doc struct {
	Phase Phase `json:"phase"`

	Struggle           string          `json:"struggle,omitempty"`
	Objective          string          `json:"objective,omitempty"`
	Clarification      *Clarification  `json:"clarification,omitempty"`
	PracticePreference string          `json:"practicePreference,omitempty"`
	NicheContext       string          `json:"nicheContext,omitempty"`

	Drills       []drills.DrillItem `json:"drills,omitempty"`
	CurrentIndex int                `json:"currentIndex"`

	UserAnswers     map[int]string            `json:"userAnswers,omitempty"`
	SelectedOptions map[int]int               `json:"selectedOptions,omitempty"`
	Evaluations     map[int]drills.Evaluation `json:"evaluations,omitempty"`

	DrillPlan  *drillplan.Plan `json:"drillPlan,omitempty"`
	HasMore    bool            `json:"hasMore"`
	NextCursor string          `json:"nextCursor,omitempty"`

	DrillSetsCompleted    int    `json:"drillSetsCompleted"`
	LastCompletedClientID string `json:"lastCompletedClientId,omitempty"`

	Signals *signals.Signals `json:"signals,omitempty"`

	ChecklistSetup  *checklist.Setup `json:"checklistSetup,omitempty"`
	ChecklistCursor int              `json:"checklistCursor"`
}

// newDoc returns an empty idle session.
func newDoc() Doc {
	return Doc{Phase: PhaseIdle, Signals: signals.New()}
}

// resetInPlace clears the document back to idle. The "start fresh"
// action: the row survives, the content does not.
func (d *Doc) resetInPlace() {
	*d = newDoc()
}

// replaceDrills wholesale-replaces the drill array and clears everything
// keyed by drill index, preserving struggle, objective, and preference.
func (d *Doc) replaceDrills(items []drills.DrillItem) {
	d.Drills = items
	d.CurrentIndex = 0
	d.UserAnswers = make(map[int]string)
	d.SelectedOptions = make(map[int]int)
	d.Evaluations = make(map[int]drills.Evaluation)
}
