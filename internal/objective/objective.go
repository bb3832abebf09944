// Package objective turns a stated struggle into a concrete practice
// objective and the clarifying question that opens a session.
package objective

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/drillwise/drillwise/internal/llm"
)

const systemPrompt = `You help someone turn a vague struggle into one concrete, practicable objective inside their skill niche. Respond with a single JSON object and nothing else:
{"objective": "...", "question": "..."}
- "objective": one sentence naming the specific skill to drill, phrased as an outcome.
- "question": one short question offering the practice formats, ending with the lettered options verbatim.`

// Derived is the clarify-phase output: a concrete objective plus the
// question that offers the practice formats.
type Derived struct {
	Objective string `json:"objective"`
	Question  string `json:"question"`
}

// DefaultModeOptions is the lettered format menu appended to every
// clarifying question.
const DefaultModeOptions = "A) a step-by-step checklist, B) a quick knowledge test, C) coaching questions, D) a scenario walkthrough"

// Deriver derives objectives through the model, with a deterministic
// fallback so the clarify phase never blocks on a bad response.
type Deriver struct {
	provider llm.Provider
}

// NewDeriver builds a deriver around a provider.
func NewDeriver(provider llm.Provider) *Deriver {
	return &Deriver{provider: provider}
}

// Derive maps a struggle to an objective and clarifying question. A
// provider failure is returned; a malformed response falls back to a
// template built from the struggle itself.
func (d *Deriver) Derive(ctx context.Context, nicheContext, struggle string) (*Derived, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Niche: %s\n", nicheContext)
	fmt.Fprintf(&b, "Struggle: %s\n\n", struggle)
	fmt.Fprintf(&b, "Format options to offer: %s", DefaultModeOptions)

	resp, err := d.provider.Generate(llm.WithPurpose(ctx, "objective"), llm.Request{
		System:      systemPrompt,
		User:        b.String(),
		MaxTokens:   512,
		Temperature: 0.5,
	})
	if err != nil {
		return nil, fmt.Errorf("derive objective: %w", err)
	}

	var out Derived
	if err := json.Unmarshal([]byte(stripFence(resp.Text)), &out); err != nil || out.Objective == "" {
		return Fallback(struggle), nil
	}
	if out.Question == "" {
		out.Question = fallbackQuestion()
	}
	return &out, nil
}

// Fallback builds a usable objective without the model.
func Fallback(struggle string) *Derived {
	return &Derived{
		Objective: fmt.Sprintf("Get deliberate practice on: %s", strings.TrimSpace(struggle)),
		Question:  fallbackQuestion(),
	}
}

func fallbackQuestion() string {
	return fmt.Sprintf("How do you want to practice this? %s", DefaultModeOptions)
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
