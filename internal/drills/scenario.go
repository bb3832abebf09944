package drills

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/drillwise/drillwise/internal/drillplan"
)

// minScenarioLen is the minimum scenario text length in characters.
const minScenarioLen = 200

// minDetailSignals is how many of the six detail categories a scenario
// must carry.
const minDetailSignals = 2

// genericQuestionWaiver: a generic template question is tolerated when the
// scenario itself carries this many detail signals.
const genericQuestionWaiver = 4

// Detail-signal patterns. A scenario needs concrete texture: numbers,
// named systems, deadlines, metrics, a real audience, money.
var (
	digitPattern    = regexp.MustCompile(`\d`)
	currencyPattern = regexp.MustCompile(`[$€£]\s?\d|\d\s?(?:dollars|euros|pounds|usd|eur|gbp)\b`)

	platformKeywords = []string{
		"instagram", "tiktok", "youtube", "twitter", "linkedin", "facebook",
		"shopify", "etsy", "amazon", "ebay", "stripe", "paypal",
		"binance", "coinbase", "robinhood", "metatrader", "tradingview",
		"excel", "notion", "salesforce", "hubspot", "slack", "zoom",
		"aws", "google ads", "mailchimp", "wordpress", "app", "platform",
		"dashboard", "broker", "exchange",
	}
	timeframeKeywords = []string{
		"today", "tomorrow", "tonight", "this week", "next week", "this month",
		"deadline", "by friday", "by monday", "quarter", "q1", "q2", "q3", "q4",
		"day", "days", "week", "weeks", "month", "months", "hour", "hours",
		"minutes", "year",
	}
	metricKeywords = []string{
		"conversion", "ctr", "click-through", "engagement", "retention",
		"revenue", "profit", "loss", "margin", "roi", "return", "growth",
		"rate", "accuracy", "win rate", "drawdown", "followers gained",
		"open rate", "churn", "views", "impressions", "reps", "sets",
	}
	audienceKeywords = []string{
		"customers", "clients", "followers", "subscribers", "users",
		"audience", "readers", "viewers", "students", "members", "leads",
		"prospects", "visitors", "traders", "investors", "team",
	}
	budgetKeywords = []string{
		"budget", "cost", "spend", "spent", "capital", "funds", "invested",
		"investment", "savings", "account balance", "bankroll",
	}

	// Second-person marker per the content contract.
	secondPersonPattern = regexp.MustCompile(`(?i)you're|you've|you'll| are| have| will|'d| would`)

	// Generic template questions that ignore the scenario.
	genericQuestions = []string{
		"what should you do next",
		"what would you do",
		"explain your reasoning",
		"how would you handle this",
		"what do you think",
		"describe your approach",
	}
)

// ScenarioViolation explains why a scenario item failed validation.
// The reason feeds the repair prompt, so it is written for the model.
type ScenarioViolation struct {
	Reason string
}

func (v *ScenarioViolation) Error() string {
	return fmt.Sprintf("scenario rejected: %s", v.Reason)
}

// ValidateScenario is the pure content-quality predicate for scenario
// drills. It short-circuits to valid when the mode doesn't produce
// scenarios or the item carries no scenario text. Checks run in order;
// the first failure wins.
func ValidateScenario(item *DrillItem, mode drillplan.Mode) *ScenarioViolation {
	if mode != drillplan.ModeWalkthrough {
		return nil
	}
	if item == nil || item.Scenario == "" {
		return nil
	}

	text := item.Scenario

	if n := utf8.RuneCountInString(text); n < minScenarioLen {
		return &ScenarioViolation{Reason: fmt.Sprintf(
			"scenario text is %d characters, needs at least %d", n, minScenarioLen)}
	}

	signals := DetailSignalCount(text)
	if signals < minDetailSignals {
		return &ScenarioViolation{Reason: fmt.Sprintf(
			"scenario has %d concrete detail signals, needs at least %d of: numeric value, platform, timeframe, metric, audience, budget",
			signals, minDetailSignals)}
	}

	if !secondPersonPattern.MatchString(text) {
		return &ScenarioViolation{Reason: "scenario is not written in second person"}
	}

	question := strings.ToLower(strings.TrimSpace(item.Question))
	if isGenericQuestion(question) && signals < genericQuestionWaiver {
		return &ScenarioViolation{Reason: fmt.Sprintf(
			"question %q is a generic template and the scenario only carries %d detail signals", item.Question, signals)}
	}

	if !questionReferencesScenario(item.Question, text) {
		return &ScenarioViolation{Reason: "question does not reference scenario specifics"}
	}

	return nil
}

// DetailSignalCount counts how many of the six detail categories appear in
// the scenario text.
func DetailSignalCount(text string) int {
	lower := strings.ToLower(text)
	count := 0

	if digitPattern.MatchString(text) {
		count++
	}
	if containsAny(lower, platformKeywords) {
		count++
	}
	if containsAny(lower, timeframeKeywords) {
		count++
	}
	if containsAny(lower, metricKeywords) {
		count++
	}
	if containsAny(lower, audienceKeywords) {
		count++
	}
	if currencyPattern.MatchString(lower) || containsAny(lower, budgetKeywords) {
		count++
	}

	return count
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func isGenericQuestion(question string) bool {
	q := strings.TrimRight(question, "?. ")
	for _, g := range genericQuestions {
		if q == g {
			return true
		}
	}
	return false
}

// questionReferencesScenario passes when the question shares a non-trivial
// word (length >4) with the scenario text, or contains a digit.
func questionReferencesScenario(question, scenario string) bool {
	if digitPattern.MatchString(question) {
		return true
	}

	scenarioLower := strings.ToLower(scenario)
	for _, word := range strings.FieldsFunc(strings.ToLower(question), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if len(word) > 4 && strings.Contains(scenarioLower, word) {
			return true
		}
	}
	return false
}
