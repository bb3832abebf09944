package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/drillwise/drillwise/internal/checklist"
	"github.com/drillwise/drillwise/internal/drillplan"
	"github.com/drillwise/drillwise/internal/drills"
	"github.com/drillwise/drillwise/internal/objective"
	"github.com/drillwise/drillwise/internal/signals"
	"github.com/drillwise/drillwise/internal/store"
)

// generator produces validated drill sets.
type generator interface {
	Generate(ctx context.Context, input drills.GenerateInput) (*drills.Result, error)
}

// openEvaluator grades free-text answers.
type openEvaluator interface {
	EvaluateOpen(ctx context.Context, item *drills.DrillItem, answer string) (*drills.Evaluation, error)
}

// objectiveDeriver maps a struggle to an objective and clarifying question.
type objectiveDeriver interface {
	Derive(ctx context.Context, nicheContext, struggle string) (*objective.Derived, error)
}

// Engine drives every session transition. It is the only writer of
// session documents.
type Engine struct {
	registry  *Registry
	saver     *Saver
	generator generator
	evaluator openEvaluator
	deriver   objectiveDeriver
	snapshots store.SnapshotRepo

	// FreeDailyLimit caps generations per user per day. Zero or negative
	// means unlimited.
	freeDailyLimit int

	logger *slog.Logger
	now    func() time.Time
}

// NewEngine wires the session engine.
func NewEngine(registry *Registry, saver *Saver, gen generator, eval openEvaluator, deriver objectiveDeriver, snapshots store.SnapshotRepo, freeDailyLimit int, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		registry:       registry,
		saver:          saver,
		generator:      gen,
		evaluator:      eval,
		deriver:        deriver,
		snapshots:      snapshots,
		freeDailyLimit: freeDailyLimit,
		logger:         logger,
		now:            time.Now,
	}
}

// modeOptions is the fixed A-D clarification menu.
func modeOptions() []ClarificationOption {
	return []ClarificationOption{
		{Key: "A", Label: "Step-by-step checklist"},
		{Key: "B", Label: "Quick knowledge test"},
		{Key: "C", Label: "Coaching questions"},
		{Key: "D", Label: "Scenario walkthrough"},
	}
}

// StartResult is the clarify-phase payload.
type StartResult struct {
	Objective     string         `json:"objective"`
	Clarification *Clarification `json:"clarification"`
}

// StartSession moves idle → clarify: derives an objective from the
// struggle and populates the mode-choice prompt.
func (e *Engine) StartSession(ctx context.Context, userID, nicheKey, nicheContext, struggle string) (*StartResult, error) {
	if strings.TrimSpace(struggle) == "" {
		return nil, &ValidationError{Field: "struggle"}
	}
	if nicheKey == "" {
		return nil, &ValidationError{Field: "nicheKey"}
	}

	sess := e.registry.Get(ctx, userID, nicheKey)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	derived, err := e.deriver.Derive(ctx, nicheContext, struggle)
	if err != nil {
		e.logger.Warn("objective derivation failed, using fallback",
			"user", userID, "niche", nicheKey, "error", err)
		derived = objective.Fallback(struggle)
	}

	doc := &sess.doc
	doc.Phase = PhaseClarify
	doc.Struggle = struggle
	doc.Objective = derived.Objective
	doc.NicheContext = nicheContext
	doc.Clarification = &Clarification{
		Question: derived.Question,
		Options:  modeOptions(),
	}

	e.saver.Critical(ctx, userID, nicheKey, doc)
	return &StartResult{Objective: doc.Objective, Clarification: doc.Clarification}, nil
}

// GenerateRequest is the generate-drills input.
type GenerateRequest struct {
	Struggle           string
	Objective          string
	PracticePreference string
	NicheContext       string
	Cursor             string
	ExistingCount      int
	ChecklistSetup     *checklist.Setup
}

// ChecklistPayload is returned instead of plain drills while the
// checklist sub-flow is active.
type ChecklistPayload struct {
	Kind      string                    `json:"kind"`
	Questions []checklist.SetupQuestion `json:"questions,omitempty"`
	Steps     []drills.ChecklistStep    `json:"steps,omitempty"`
	Cursor    int                       `json:"cursor"`
}

// GenerateResult is the generate-drills output.
type GenerateResult struct {
	Plan       drillplan.Plan     `json:"drillPlan"`
	Drills     []drills.DrillItem `json:"drills,omitempty"`
	HasMore    bool               `json:"hasMore"`
	NextCursor string             `json:"nextCursor,omitempty"`
	Warnings   []string           `json:"-"`
	Checklist  *ChecklistPayload  `json:"drillset,omitempty"`
}

// GenerateDrills moves clarify → drills (or drills → drills on
// regeneration/continuation). Quota and validation failures leave the
// phase and existing drills untouched.
func (e *Engine) GenerateDrills(ctx context.Context, userID, nicheKey string, req GenerateRequest) (*GenerateResult, error) {
	if nicheKey == "" {
		return nil, &ValidationError{Field: "nicheKey"}
	}
	if req.PracticePreference == "" {
		return nil, &ValidationError{Field: "practicePreference"}
	}
	mode, err := drillplan.ParsePreference(req.PracticePreference)
	if err != nil {
		return nil, &ValidationError{Field: "practicePreference", Detail: err.Error()}
	}

	sess := e.registry.Get(ctx, userID, nicheKey)
	sess.mu.Lock()
	doc := &sess.doc

	struggle := firstNonEmpty(req.Struggle, doc.Struggle)
	if strings.TrimSpace(struggle) == "" {
		sess.mu.Unlock()
		return nil, &ValidationError{Field: "struggle"}
	}
	obj := firstNonEmpty(req.Objective, doc.Objective)
	nicheContext := firstNonEmpty(req.NicheContext, doc.NicheContext)
	if strings.TrimSpace(nicheContext) == "" {
		sess.mu.Unlock()
		return nil, ErrProfileRequired
	}

	plan := drillplan.Resolve(mode)

	if qerr := e.checkQuota(ctx, userID); qerr != nil {
		sess.mu.Unlock()
		return nil, qerr
	}

	// Context fields are committed before the blocking generation call so
	// a setup round-trip or crash never loses the user's choices.
	doc.Struggle = struggle
	doc.Objective = obj
	doc.NicheContext = nicheContext
	doc.PracticePreference = req.PracticePreference
	if doc.Signals == nil {
		doc.Signals = signals.New()
	}

	// Checklist setup gate: until all four fields are answered, return
	// the questionnaire instead of generating anything.
	var setup *checklist.Setup
	if mode == drillplan.ModeChecklist {
		setup = mergeSetup(doc.ChecklistSetup, req.ChecklistSetup)
		doc.ChecklistSetup = setup
		if !setup.Complete() {
			payload := &ChecklistPayload{
				Kind:      "checklist_setup",
				Questions: checklist.QuestionsFor(setup.MissingFields()),
			}
			e.saver.Schedule(userID, nicheKey, doc)
			sess.mu.Unlock()
			return &GenerateResult{Plan: plan, Checklist: payload}, nil
		}
	}

	input := drills.GenerateInput{
		Mode:           mode,
		NicheContext:   nicheContext,
		Struggle:       struggle,
		Objective:      obj,
		SignalsSummary: doc.Signals.PromptSummary(),
		ChunkSize:      plan.ChunkSize,
		Setup:          setup,
	}

	token := uuid.NewString()
	sess.genToken = token
	e.saver.Schedule(userID, nicheKey, doc)
	sess.mu.Unlock()

	result, err := e.generator.Generate(ctx, input)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.genToken != token {
		// A newer request owns this session now; applying this response
		// would clobber its drills.
		return nil, ErrGenerationSuperseded
	}

	doc.replaceDrills(result.Items)
	doc.Phase = PhaseDrills
	doc.DrillPlan = &plan

	total := req.ExistingCount + len(result.Items)
	doc.HasMore, doc.NextCursor = drillplan.Continuation(plan, total)

	out := &GenerateResult{
		Plan:       plan,
		Drills:     result.Items,
		HasMore:    doc.HasMore,
		NextCursor: doc.NextCursor,
		Warnings:   result.Warnings,
	}

	if mode == drillplan.ModeChecklist && len(result.Items) > 0 {
		doc.ChecklistCursor = 0
		out.Checklist = &ChecklistPayload{
			Kind:  "checklist_builder",
			Steps: result.Items[0].Items,
		}
	}

	e.appendSnapshot(ctx, userID, nicheKey, doc, mode)
	e.saver.Critical(ctx, userID, nicheKey, doc)
	return out, nil
}

func (e *Engine) checkQuota(ctx context.Context, userID string) error {
	if e.freeDailyLimit <= 0 || e.snapshots == nil {
		return nil
	}
	now := e.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := e.snapshots.CountSince(ctx, userID, midnight)
	if err != nil {
		// Degraded reads never block the practice loop.
		e.logger.Warn("quota count unavailable, allowing generation", "error", err)
		return nil
	}
	if count >= e.freeDailyLimit {
		return &QuotaError{Limit: e.freeDailyLimit, CompletedToday: count}
	}
	return nil
}

func (e *Engine) appendSnapshot(ctx context.Context, userID, nicheKey string, doc *Doc, mode drillplan.Mode) {
	if e.snapshots == nil {
		return
	}
	raw, err := json.Marshal(doc.Drills)
	if err != nil {
		return
	}
	err = e.snapshots.Append(ctx, store.DrillSetSnapshotData{
		UserID:    userID,
		NicheKey:  nicheKey,
		Struggle:  doc.Struggle,
		Objective: doc.Objective,
		Mode:      string(mode),
		Drills:    raw,
	})
	if err != nil {
		e.logger.Warn("drill set snapshot not recorded", "user", userID, "error", err)
	}
}

// SubmitAnswer grades one answer and folds it into the signals.
// Multiple-choice grading is local; everything else goes through the
// evaluator.
func (e *Engine) SubmitAnswer(ctx context.Context, userID, nicheKey string, index int, answerText string, selectedOption *int) (*drills.Evaluation, error) {
	sess := e.registry.Get(ctx, userID, nicheKey)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	doc := &sess.doc

	if doc.Phase != PhaseDrills || len(doc.Drills) == 0 {
		return nil, &ValidationError{Field: "phase", Detail: "no active drills"}
	}
	if index < 0 || index >= len(doc.Drills) {
		return nil, &ValidationError{Field: "index", Detail: fmt.Sprintf("%d out of range [0,%d)", index, len(doc.Drills))}
	}

	item := &doc.Drills[index]
	var ev drills.Evaluation

	if item.Kind == drills.KindMultipleChoice {
		if selectedOption == nil {
			return nil, &ValidationError{Field: "selectedOption"}
		}
		ev = drills.EvaluateChoice(item, *selectedOption)
		if doc.SelectedOptions == nil {
			doc.SelectedOptions = make(map[int]int)
		}
		doc.SelectedOptions[index] = *selectedOption
	} else {
		if strings.TrimSpace(answerText) == "" {
			return nil, &ValidationError{Field: "answer"}
		}
		graded, err := e.evaluator.EvaluateOpen(ctx, item, answerText)
		if err != nil {
			return nil, err
		}
		ev = *graded
		if doc.UserAnswers == nil {
			doc.UserAnswers = make(map[int]string)
		}
		doc.UserAnswers[index] = answerText
	}

	if doc.Evaluations == nil {
		doc.Evaluations = make(map[int]drills.Evaluation)
	}
	doc.Evaluations[index] = ev

	mode := drillplan.Mode("")
	if doc.DrillPlan != nil {
		mode = doc.DrillPlan.Mode
	}
	if doc.Signals == nil {
		doc.Signals = signals.New()
	}
	doc.Signals.RecordAnswer(mode, ev.Correct, answerText, item.Topic, signals.Quality(ev.Quality))

	e.saver.Schedule(userID, nicheKey, doc)
	return &ev, nil
}

// Continue advances the cursor round-robin and returns the new index.
func (e *Engine) Continue(ctx context.Context, userID, nicheKey string) (int, error) {
	sess := e.registry.Get(ctx, userID, nicheKey)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	doc := &sess.doc

	if doc.Phase != PhaseDrills || len(doc.Drills) == 0 {
		return 0, &ValidationError{Field: "phase", Detail: "no active drills"}
	}

	doc.CurrentIndex = (doc.CurrentIndex + 1) % len(doc.Drills)
	e.saver.Schedule(userID, nicheKey, doc)
	return doc.CurrentIndex, nil
}

// ChecklistStep moves the builder cursor by delta (+1 for "mark done &
// next", -1 for "back"), clamped to [0, stepCount].
func (e *Engine) ChecklistStep(ctx context.Context, userID, nicheKey string, delta int) (int, error) {
	sess := e.registry.Get(ctx, userID, nicheKey)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	doc := &sess.doc

	if doc.Phase != PhaseDrills || len(doc.Drills) == 0 || doc.Drills[0].Kind != drills.KindChecklist {
		return 0, &ValidationError{Field: "phase", Detail: "no active checklist"}
	}

	steps := len(doc.Drills[0].Items)
	doc.ChecklistCursor = checklist.ClampCursor(doc.ChecklistCursor+delta, steps)
	e.saver.Schedule(userID, nicheKey, doc)
	return doc.ChecklistCursor, nil
}

// MarkCompleted bumps the completed-set counter unless this client
// completion id was already counted. The ledger is the durable dedup;
// this guard keeps the in-session counter honest across retries.
func (e *Engine) MarkCompleted(ctx context.Context, userID, nicheKey, clientCompletionID string) {
	sess := e.registry.Get(ctx, userID, nicheKey)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	doc := &sess.doc

	if clientCompletionID != "" && doc.LastCompletedClientID == clientCompletionID {
		return
	}
	doc.DrillSetsCompleted++
	doc.LastCompletedClientID = clientCompletionID
	e.saver.Schedule(userID, nicheKey, doc)
}

// Reset clears the session in place. The start-fresh action.
func (e *Engine) Reset(ctx context.Context, userID, nicheKey string) error {
	sess := e.registry.Get(ctx, userID, nicheKey)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.genToken = ""
	sess.doc.resetInPlace()
	e.saver.Critical(ctx, userID, nicheKey, &sess.doc)
	return nil
}

// Snapshot returns the serialized session document.
func (e *Engine) Snapshot(ctx context.Context, userID, nicheKey string) (json.RawMessage, error) {
	sess := e.registry.Get(ctx, userID, nicheKey)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return json.Marshal(&sess.doc)
}

// Restore replaces the session document wholesale from a serialized
// form. The full-write path of the session surface.
func (e *Engine) Restore(ctx context.Context, userID, nicheKey string, raw json.RawMessage) error {
	var doc Doc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ValidationError{Field: "session", Detail: "document does not decode"}
	}
	if doc.Phase == "" {
		doc.Phase = PhaseIdle
	}
	if doc.Signals == nil {
		doc.Signals = signals.New()
	}
	if len(doc.Drills) > 0 && (doc.CurrentIndex < 0 || doc.CurrentIndex >= len(doc.Drills)) {
		doc.CurrentIndex = 0
	}

	sess := e.registry.Get(ctx, userID, nicheKey)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.genToken = ""
	sess.doc = doc
	e.saver.Critical(ctx, userID, nicheKey, &sess.doc)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// mergeSetup overlays newly supplied setup answers on the stored ones.
func mergeSetup(stored, incoming *checklist.Setup) *checklist.Setup {
	out := &checklist.Setup{}
	if stored != nil {
		*out = *stored
	}
	if incoming != nil {
		if incoming.Goal != "" {
			out.Goal = incoming.Goal
		}
		if incoming.Location != "" {
			out.Location = incoming.Location
		}
		if incoming.Constraints != "" {
			out.Constraints = incoming.Constraints
		}
		if incoming.Level != "" {
			out.Level = incoming.Level
		}
	}
	return out
}
