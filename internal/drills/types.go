package drills

// DrillKind tags the DrillItem union.
type DrillKind string

const (
	KindOpen           DrillKind = "open"
	KindMultipleChoice DrillKind = "multiple_choice"
	KindScenario       DrillKind = "scenario"
	KindChecklist      DrillKind = "checklist"
)

// ChecklistStep is one ordered step of a generated checklist.
type ChecklistStep struct {
	Title       string `json:"title"`
	Instruction string `json:"instruction"`
	DoneWhen    string `json:"doneWhen"`
	Tip         string `json:"tip,omitempty"`
}

// DrillItem is one generated practice unit. Kind selects which fields are
// meaningful; Question is always populated (normalized display text) so the
// UI can render any item without caring about its shape.
type DrillItem struct {
	Kind  DrillKind `json:"kind"`
	Topic string    `json:"topic,omitempty"`

	// Question is the flattened prompt shown to the user.
	Question string `json:"question"`

	// Open and multiple-choice fields.
	CorrectAnswer      string   `json:"correctAnswer,omitempty"`
	Explanation        string   `json:"explanation,omitempty"`
	Options            []string `json:"options,omitempty"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`

	// Scenario fields.
	Scenario       string   `json:"scenario,omitempty"`
	ContextBullets []string `json:"contextBullets,omitempty"`
	Constraints    []string `json:"constraints,omitempty"`
	Rubric         string   `json:"rubric,omitempty"`

	// Checklist fields.
	Title       string          `json:"title,omitempty"`
	Items       []ChecklistStep `json:"items,omitempty"`
	Checkpoints []string        `json:"checkpoints,omitempty"`
}

// Evaluation is the outcome of grading one submitted answer.
type Evaluation struct {
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback,omitempty"`

	// Quality is an optional grade from the open-answer evaluator:
	// "close" when the answer nearly hit the rubric. Empty otherwise.
	Quality string `json:"quality,omitempty"`

	Topic string `json:"topic,omitempty"`
}
