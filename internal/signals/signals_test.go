package signals

import (
	"strings"
	"testing"

	"github.com/drillwise/drillwise/internal/drillplan"
)

func TestRecordAnswer_Rushed(t *testing.T) {
	s := New()
	s.RecordAnswer(drillplan.ModeCoaching, false, "idk", "risk_sizing", "")
	if s.LastAnswerQuality != QualityRushed {
		t.Errorf("quality = %s, want rushed", s.LastAnswerQuality)
	}
	if s.RecommendedMode != drillplan.ModeCoaching {
		t.Errorf("recommended = %s, want coaching", s.RecommendedMode)
	}
}

func TestRecordAnswer_SolidOverridesLength(t *testing.T) {
	s := New()
	s.RecordAnswer(drillplan.ModeTest, true, "yes", "entries", "")
	if s.LastAnswerQuality != QualitySolid {
		t.Errorf("quality = %s, want solid", s.LastAnswerQuality)
	}
	if s.RecommendedMode != "" {
		t.Errorf("unexpected recommendation %s", s.RecommendedMode)
	}
}

func TestModeMismatch_TwoMissesInTestMode(t *testing.T) {
	s := New()
	s.RecordAnswer(drillplan.ModeTest, false, "a long enough wrong answer", "risk_sizing", "")
	if s.ModeMismatch {
		t.Fatal("mismatch after one miss")
	}
	s.RecordAnswer(drillplan.ModeTest, false, "another long wrong answer", "risk_sizing", "")

	if s.RepeatedMistakeTopic != "risk_sizing" {
		t.Errorf("repeatedMistakeTopic = %q, want risk_sizing", s.RepeatedMistakeTopic)
	}
	if !s.ModeMismatch {
		t.Error("expected mode mismatch")
	}
	if s.RecommendedMode != drillplan.ModeWalkthrough {
		t.Errorf("recommended = %s, want walkthrough", s.RecommendedMode)
	}
}

func TestModeMismatch_NotInOtherModes(t *testing.T) {
	s := New()
	s.RecordAnswer(drillplan.ModeCoaching, false, "a long enough wrong answer", "exits", "")
	s.RecordAnswer(drillplan.ModeCoaching, false, "another long wrong answer", "exits", "")

	if s.ModeMismatch {
		t.Error("mode mismatch outside test mode")
	}
	if s.RecommendedMode != drillplan.ModeCoaching {
		t.Errorf("recommended = %s, want coaching for repeated mistake", s.RecommendedMode)
	}
}

func TestModeMismatch_ClearsOnOtherTopic(t *testing.T) {
	s := New()
	s.RecordAnswer(drillplan.ModeTest, false, "a long enough wrong answer", "risk_sizing", "")
	s.RecordAnswer(drillplan.ModeTest, false, "another long wrong answer", "risk_sizing", "")
	if !s.ModeMismatch {
		t.Fatal("expected mismatch")
	}

	// Missing a different topic clears the mismatch flag but keeps the
	// repeated-mistake recommendation.
	s.RecordAnswer(drillplan.ModeTest, false, "yet another long wrong answer", "psychology", "")
	if s.ModeMismatch {
		t.Error("mismatch should only apply to the just-missed topic")
	}
}

func TestPromptSummary(t *testing.T) {
	s := New()
	if got := s.PromptSummary(); got != "None" {
		t.Errorf("empty summary = %q, want None", got)
	}

	s.RecordAnswer(drillplan.ModeTest, false, "a long enough wrong answer", "risk_sizing", "")
	s.RecordAnswer(drillplan.ModeTest, false, "another long wrong answer", "risk_sizing", "")
	got := s.PromptSummary()
	if got == "None" {
		t.Fatal("expected non-empty summary")
	}
}

func TestPromptSummaryMissedTopicsSorted(t *testing.T) {
	s := New()
	s.RecordAnswer(drillplan.ModeCoaching, false, "a long enough wrong answer", "gamma", "")
	s.RecordAnswer(drillplan.ModeCoaching, false, "another long wrong answer", "alpha", "")
	s.RecordAnswer(drillplan.ModeCoaching, false, "yet another long wrong answer", "beta", "")

	want := "other missed topics: alpha, beta, gamma"
	first := s.PromptSummary()
	if !strings.Contains(first, want) {
		t.Errorf("summary = %q, want topics sorted as %q", first, want)
	}
	for i := 0; i < 10; i++ {
		if got := s.PromptSummary(); got != first {
			t.Fatalf("summary changed between calls: %q vs %q", first, got)
		}
	}
}

func TestCloseQualityFromEvaluator(t *testing.T) {
	s := New()
	s.RecordAnswer(drillplan.ModeCoaching, false, "my position sizing was almost right there", "risk_sizing", QualityClose)
	if s.LastAnswerQuality != QualityClose {
		t.Errorf("quality = %s, want close", s.LastAnswerQuality)
	}
}
