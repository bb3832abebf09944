package drills

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/drillwise/drillwise/internal/llm"
)

const evalSystemPrompt = `You grade one answer to one practice drill. Respond with a single JSON object and nothing else:
{"correct": true|false, "quality": "rushed"|"close"|"solid", "feedback": "..."}
- "correct": whether the answer demonstrates the drill's point. Be fair, not pedantic.
- "quality": "rushed" for throwaway effort, "close" for nearly-there, "solid" for a real attempt.
- "feedback": 1-3 sentences, specific to what the answer got right or missed.`

// Evaluator grades submitted answers. Multiple-choice grading is local;
// open-ended answers go through the model.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewEvaluator builds an evaluator around a provider.
func NewEvaluator(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// EvaluateChoice grades a multiple-choice selection without a model call.
func EvaluateChoice(item *DrillItem, selected int) Evaluation {
	correct := selected == item.CorrectOptionIndex
	feedback := item.Explanation
	if feedback == "" {
		if correct {
			feedback = "Correct."
		} else if item.CorrectOptionIndex >= 0 && item.CorrectOptionIndex < len(item.Options) {
			feedback = fmt.Sprintf("The answer was: %s", item.Options[item.CorrectOptionIndex])
		}
	}
	return Evaluation{
		Correct:  correct,
		Quality:  "solid",
		Feedback: feedback,
		Topic:    item.Topic,
	}
}

// EvaluateOpen grades a free-text answer via the model.
func (e *Evaluator) EvaluateOpen(ctx context.Context, item *DrillItem, answer string) (*Evaluation, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Drill (%s):\n%s\n", item.Kind, DisplayText(item))
	if item.CorrectAnswer != "" {
		fmt.Fprintf(&b, "\nModel answer:\n%s\n", item.CorrectAnswer)
	}
	if item.Rubric != "" {
		fmt.Fprintf(&b, "\nRubric:\n%s\n", item.Rubric)
	}
	fmt.Fprintf(&b, "\nSubmitted answer:\n%s", answer)

	evalCtx := llm.WithPurpose(ctx, "evaluation")
	resp, err := e.provider.Generate(evalCtx, llm.Request{
		System:      evalSystemPrompt,
		User:        b.String(),
		MaxTokens:   e.cfg.RepairMaxTokens,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate answer: %w", err)
	}

	var ev Evaluation
	if err := json.Unmarshal([]byte(stripCodeFence(resp.Text)), &ev); err != nil {
		return nil, &ParseError{Reason: "evaluation response is not valid JSON", Err: err}
	}
	switch ev.Quality {
	case "rushed", "close", "solid":
	default:
		ev.Quality = "solid"
	}
	ev.Topic = item.Topic
	return &ev, nil
}
