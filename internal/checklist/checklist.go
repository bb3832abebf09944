// Package checklist implements the two-phase sub-flow nested under the
// checklist practice mode: a setup questionnaire followed by a step-by-step
// builder with its own cursor.
package checklist

// Step-count bounds for one generated checklist.
const (
	MinSteps = 8
	MaxSteps = 14
)

// Setup holds the four required setup answers. The builder phase is gated
// on all of them being present.
type Setup struct {
	Goal        string `json:"goal"`
	Location    string `json:"location"`
	Constraints string `json:"constraints"`
	Level       string `json:"level"`
}

// MissingFields returns the setup fields still unanswered, in fixed order.
func (s *Setup) MissingFields() []string {
	if s == nil {
		return []string{"goal", "location", "constraints", "level"}
	}
	var missing []string
	if s.Goal == "" {
		missing = append(missing, "goal")
	}
	if s.Location == "" {
		missing = append(missing, "location")
	}
	if s.Constraints == "" {
		missing = append(missing, "constraints")
	}
	if s.Level == "" {
		missing = append(missing, "level")
	}
	return missing
}

// Complete reports whether every setup field is answered.
func (s *Setup) Complete() bool {
	return len(s.MissingFields()) == 0
}

// SetupQuestion is one questionnaire entry of the setup payload.
type SetupQuestion struct {
	Field    string `json:"field"`
	Question string `json:"question"`
}

// setupQuestions maps fields to their wording.
var setupQuestions = map[string]string{
	"goal":        "What exactly do you want this checklist to get done?",
	"location":    "Where will you be doing this (platform, place, or context)?",
	"constraints": "Any constraints — time, budget, tools you must or can't use?",
	"level":       "How experienced are you with this already?",
}

// QuestionsFor returns the questionnaire for the given missing fields.
func QuestionsFor(missing []string) []SetupQuestion {
	out := make([]SetupQuestion, 0, len(missing))
	for _, f := range missing {
		q, ok := setupQuestions[f]
		if !ok {
			continue
		}
		out = append(out, SetupQuestion{Field: f, Question: q})
	}
	return out
}

// ClampCursor bounds a builder cursor to [0, stepCount]. The cursor equals
// stepCount when every step is marked done.
func ClampCursor(cursor, stepCount int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > stepCount {
		return stepCount
	}
	return cursor
}
