package drills

import (
	"context"
	"errors"
	"testing"

	"github.com/drillwise/drillwise/internal/llm"
)

func TestEvaluateChoice(t *testing.T) {
	item := &DrillItem{
		Kind:               KindMultipleChoice,
		Topic:              "risk_sizing",
		Question:           "Max position size at 2% risk?",
		Options:            []string{"$100", "$200", "$400", "$800"},
		CorrectOptionIndex: 1,
		Explanation:        "2% of a $10k account is $200.",
	}

	ev := EvaluateChoice(item, 1)
	if !ev.Correct {
		t.Error("correct selection marked wrong")
	}
	if ev.Topic != "risk_sizing" {
		t.Errorf("topic = %q", ev.Topic)
	}

	ev = EvaluateChoice(item, 3)
	if ev.Correct {
		t.Error("wrong selection marked correct")
	}
	if ev.Feedback == "" {
		t.Error("wrong selection should carry feedback")
	}
}

func TestEvaluateChoiceWithoutExplanation(t *testing.T) {
	item := &DrillItem{
		Kind:               KindMultipleChoice,
		Options:            []string{"a", "b", "c", "d"},
		CorrectOptionIndex: 2,
	}
	ev := EvaluateChoice(item, 0)
	if ev.Feedback != "The answer was: c" {
		t.Errorf("feedback = %q", ev.Feedback)
	}
}

func TestEvaluateOpen(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: `{"correct":true,"quality":"close","feedback":"Nearly there, name the metric."}`,
	})
	e := NewEvaluator(mock, DefaultConfig())

	item := &DrillItem{Kind: KindOpen, Topic: "hooks", Question: "Q", CorrectAnswer: "A"}
	ev, err := e.EvaluateOpen(context.Background(), item, "my answer")
	if err != nil {
		t.Fatalf("EvaluateOpen: %v", err)
	}
	if !ev.Correct {
		t.Error("want correct")
	}
	if ev.Quality != "close" {
		t.Errorf("quality = %q, want close", ev.Quality)
	}
	if ev.Topic != "hooks" {
		t.Errorf("topic = %q, want item topic", ev.Topic)
	}
}

func TestEvaluateOpenNormalizesQuality(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: `{"correct":false,"quality":"meh","feedback":"No."}`,
	})
	e := NewEvaluator(mock, DefaultConfig())

	ev, err := e.EvaluateOpen(context.Background(), &DrillItem{Kind: KindOpen, Question: "Q"}, "x")
	if err != nil {
		t.Fatalf("EvaluateOpen: %v", err)
	}
	if ev.Quality != "solid" {
		t.Errorf("quality = %q, want solid fallback", ev.Quality)
	}
}

func TestEvaluateOpenBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "great job!"})
	e := NewEvaluator(mock, DefaultConfig())

	_, err := e.EvaluateOpen(context.Background(), &DrillItem{Kind: KindOpen, Question: "Q"}, "x")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}
