package drills

import (
	"strings"
	"testing"

	"github.com/drillwise/drillwise/internal/drillplan"
)

// richScenario carries all six detail categories and is written in
// second person.
const richScenario = "You're three weeks into running a dropshipping store on Shopify and your ad spend hit $400 this month with only 6 sales. Your conversion rate sits at 0.8% while traffic holds steady at 2,000 visitors a week. You have $200 of budget left, and your supplier said shipping would slip past Friday."

func TestValidateScenarioAccepts(t *testing.T) {
	item := &DrillItem{
		Kind:     KindScenario,
		Scenario: richScenario,
		Question: "With $200 of budget left, what do you change first?",
	}
	if v := ValidateScenario(item, drillplan.ModeWalkthrough); v != nil {
		t.Fatalf("unexpected violation: %s", v.Reason)
	}
}

func TestValidateScenarioSkipsOtherModes(t *testing.T) {
	item := &DrillItem{Kind: KindScenario, Scenario: "short"}
	if v := ValidateScenario(item, drillplan.ModeTest); v != nil {
		t.Errorf("test mode should skip validation, got %s", v.Reason)
	}
	if v := ValidateScenario(&DrillItem{Kind: KindOpen, Question: "Q"}, drillplan.ModeWalkthrough); v != nil {
		t.Errorf("item without scenario text should skip validation, got %s", v.Reason)
	}
}

func TestValidateScenarioTooShort(t *testing.T) {
	item := &DrillItem{Kind: KindScenario, Scenario: "You lost $50 on your first trade today."}
	v := ValidateScenario(item, drillplan.ModeWalkthrough)
	if v == nil {
		t.Fatal("expected violation")
	}
	if !strings.Contains(v.Reason, "characters") {
		t.Errorf("reason = %q, want character count", v.Reason)
	}
}

func TestValidateScenarioLengthCountsRunes(t *testing.T) {
	// 150 runes but well over 200 bytes; byte-length must not pass this.
	multibyte := strings.Repeat("你", 150)
	item := &DrillItem{Kind: KindScenario, Scenario: multibyte, Question: "Q"}
	v := ValidateScenario(item, drillplan.ModeWalkthrough)
	if v == nil {
		t.Fatal("expected violation")
	}
	if !strings.Contains(v.Reason, "150 characters") {
		t.Errorf("reason = %q, want rune count of 150", v.Reason)
	}
}

func TestValidateScenarioNeedsDetailSignals(t *testing.T) {
	vague := "You're working on your craft and things aren't going the way you hoped. Something about your approach feels off and you can't quite name it. Your mentor suggested stepping back and rethinking the whole thing, but that advice felt too abstract to act on right away."
	item := &DrillItem{Kind: KindScenario, Scenario: vague, Question: "Which part of the approach needs rethinking first?"}
	v := ValidateScenario(item, drillplan.ModeWalkthrough)
	if v == nil {
		t.Fatal("expected violation")
	}
	if !strings.Contains(v.Reason, "detail signals") {
		t.Errorf("reason = %q, want detail signals", v.Reason)
	}
}

func TestValidateScenarioNeedsSecondPerson(t *testing.T) {
	thirdPerson := "The trader opened a position on TradingView at 9am on Monday with a 2% risk cap. By noon the drawdown reached 3% and kept widening through the week as stops kept triggering, totaling 8 losing trades in 5 days. The journal shows every entry chased a breakout that had already run."
	item := &DrillItem{Kind: KindScenario, Scenario: thirdPerson, Question: "Which of the 8 losing trades broke the 2% risk cap?"}
	v := ValidateScenario(item, drillplan.ModeWalkthrough)
	if v == nil {
		t.Fatal("expected violation")
	}
	if !strings.Contains(v.Reason, "second person") {
		t.Errorf("reason = %q, want second person", v.Reason)
	}
}

func TestValidateScenarioGenericQuestion(t *testing.T) {
	// Two detail signals only: digits and a timeframe.
	plain := "You're practicing your golf swing for the third week in a row. You've logged 40 swings each morning and your coach wants 60 by next week. Your left wrist keeps rolling over at the top of the backswing, and your divots land two inches behind the ball no matter how you shift your stance."
	item := &DrillItem{Kind: KindScenario, Scenario: plain, Question: "What would you do?"}
	v := ValidateScenario(item, drillplan.ModeWalkthrough)
	if v == nil {
		t.Fatal("expected violation")
	}
	if !strings.Contains(v.Reason, "generic template") {
		t.Errorf("reason = %q, want generic template", v.Reason)
	}
}

func TestValidateScenarioGenericQuestionWaivedOnRichScenario(t *testing.T) {
	item := &DrillItem{Kind: KindScenario, Scenario: richScenario, Question: "How would you handle this?"}
	if v := ValidateScenario(item, drillplan.ModeWalkthrough); v != nil {
		t.Fatalf("rich scenario should waive generic question, got %s", v.Reason)
	}
}

func TestValidateScenarioQuestionMustReference(t *testing.T) {
	item := &DrillItem{Kind: KindScenario, Scenario: richScenario, Question: "Pick the best next move."}
	v := ValidateScenario(item, drillplan.ModeWalkthrough)
	if v == nil {
		t.Fatal("expected violation")
	}
	if !strings.Contains(v.Reason, "reference") {
		t.Errorf("reason = %q, want reference failure", v.Reason)
	}
}

func TestDetailSignalCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "no texture here whatsoever", 0},
		{"rich", richScenario, 6},
		{"digits and timeframe", "logged 40 swings by next week", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetailSignalCount(tt.text); got != tt.want {
				t.Errorf("DetailSignalCount = %d, want %d", got, tt.want)
			}
		})
	}
}
