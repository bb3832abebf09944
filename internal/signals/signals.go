// Package signals derives adaptive practice signals from answer history:
// repeated mistake topics, rushed answers, and mode mismatch. Signals are
// advisory context for the next generation call; they never force a mode
// change.
package signals

import (
	"fmt"
	"sort"
	"strings"

	"github.com/drillwise/drillwise/internal/drillplan"
)

// rushedAnswerMaxLen is the exclusive upper bound on answer length for a
// wrong answer to count as rushed.
const rushedAnswerMaxLen = 10

// repeatedMistakeThreshold is how many misses on one topic mark it as a
// repeated mistake.
const repeatedMistakeThreshold = 2

// Quality grades the most recent answer.
type Quality string

const (
	QualityRushed  Quality = "rushed"
	QualityClose   Quality = "close"
	QualitySolid   Quality = "solid"
	QualityUnknown Quality = "unknown"
)

// Signals is the derived adaptive state, recomputed after each answer.
type Signals struct {
	TopicCorrect   map[string]int `json:"topicCorrect"`
	TopicIncorrect map[string]int `json:"topicIncorrect"`
	Attempts       int            `json:"attempts"`
	Correct        int            `json:"correct"`

	LastAnswerQuality    Quality        `json:"lastAnswerQuality"`
	RepeatedMistakeTopic string         `json:"repeatedMistakeTopic,omitempty"`
	ModeMismatch         bool           `json:"modeMismatch"`
	RecommendedMode      drillplan.Mode `json:"recommendedMode,omitempty"`
	SuggestionReason     string         `json:"suggestionReason,omitempty"`
}

// New returns empty signals.
func New() *Signals {
	return &Signals{
		TopicCorrect:      make(map[string]int),
		TopicIncorrect:    make(map[string]int),
		LastAnswerQuality: QualityUnknown,
	}
}

// RecordAnswer folds one answered drill into the signals. evalQuality is an
// optional grade from the open-answer evaluator ("" when unavailable); the
// rule-based grading below wins except for an explicit "close" on a miss.
func (s *Signals) RecordAnswer(mode drillplan.Mode, wasCorrect bool, answerText, topic string, evalQuality Quality) {
	if s.TopicCorrect == nil {
		s.TopicCorrect = make(map[string]int)
	}
	if s.TopicIncorrect == nil {
		s.TopicIncorrect = make(map[string]int)
	}

	s.Attempts++
	if wasCorrect {
		s.Correct++
		if topic != "" {
			s.TopicCorrect[topic]++
		}
	} else if topic != "" {
		s.TopicIncorrect[topic]++
	}

	trimmed := strings.TrimSpace(answerText)
	switch {
	case wasCorrect:
		s.LastAnswerQuality = QualitySolid
	case len(trimmed) > 0 && len(trimmed) < rushedAnswerMaxLen:
		s.LastAnswerQuality = QualityRushed
	case evalQuality == QualityClose:
		s.LastAnswerQuality = QualityClose
	default:
		s.LastAnswerQuality = QualityUnknown
	}

	if !wasCorrect && topic != "" && s.TopicIncorrect[topic] >= repeatedMistakeThreshold {
		s.RepeatedMistakeTopic = topic
	}

	// Mode mismatch only applies to test mode, and only when the topic
	// just missed is the repeated-mistake topic.
	s.ModeMismatch = !wasCorrect &&
		mode == drillplan.ModeTest &&
		s.RepeatedMistakeTopic != "" &&
		s.RepeatedMistakeTopic == topic

	s.recommend()
}

// recommend applies the advisory priority: mode mismatch, then rushed
// answers, then repeated mistakes.
func (s *Signals) recommend() {
	switch {
	case s.ModeMismatch:
		s.RecommendedMode = drillplan.ModeWalkthrough
		s.SuggestionReason = fmt.Sprintf(
			"repeated misses on %q in test mode; a walkthrough may help more than more questions",
			s.RepeatedMistakeTopic)
	case s.LastAnswerQuality == QualityRushed:
		s.RecommendedMode = drillplan.ModeCoaching
		s.SuggestionReason = "answers look rushed; coaching slows the pace down"
	case s.RepeatedMistakeTopic != "":
		s.RecommendedMode = drillplan.ModeCoaching
		s.SuggestionReason = fmt.Sprintf("repeated misses on %q; targeted coaching could help", s.RepeatedMistakeTopic)
	default:
		s.RecommendedMode = ""
		s.SuggestionReason = ""
	}
}

// PromptSummary renders the signals as compact text for the generation
// prompt. Returns "None" when there is nothing worth telling the model.
func (s *Signals) PromptSummary() string {
	if s == nil || s.Attempts == 0 {
		return "None"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "answered %d, correct %d", s.Attempts, s.Correct)
	if s.RepeatedMistakeTopic != "" {
		fmt.Fprintf(&b, "; repeated mistakes on %q", s.RepeatedMistakeTopic)
	}
	if s.LastAnswerQuality == QualityRushed {
		b.WriteString("; last answer was rushed")
	}

	var weak []string
	for topic, misses := range s.TopicIncorrect {
		if misses > 0 && topic != s.RepeatedMistakeTopic {
			weak = append(weak, topic)
		}
	}
	if len(weak) > 0 {
		sort.Strings(weak)
		fmt.Fprintf(&b, "; other missed topics: %s", strings.Join(weak, ", "))
	}
	return b.String()
}
