package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/drillwise/drillwise/internal/checklist"
	"github.com/drillwise/drillwise/internal/drillplan"
	"github.com/drillwise/drillwise/internal/drills"
	"github.com/drillwise/drillwise/internal/objective"
	"github.com/drillwise/drillwise/internal/store"
)

type memSessions struct {
	mu   sync.Mutex
	docs map[string]json.RawMessage
	puts int
}

func newMemSessions() *memSessions {
	return &memSessions{docs: make(map[string]json.RawMessage)}
}

func (m *memSessions) GetSession(_ context.Context, userID, nicheKey string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.docs[userID+"/"+nicheKey], nil
}

func (m *memSessions) PutSession(_ context.Context, userID, nicheKey string, doc json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[userID+"/"+nicheKey] = doc
	m.puts++
	return nil
}

type fakeGen struct {
	fn    func(ctx context.Context, input drills.GenerateInput) (*drills.Result, error)
	calls int
}

func (f *fakeGen) Generate(ctx context.Context, input drills.GenerateInput) (*drills.Result, error) {
	f.calls++
	return f.fn(ctx, input)
}

type fakeEval struct {
	ev  drills.Evaluation
	err error
}

func (f *fakeEval) EvaluateOpen(context.Context, *drills.DrillItem, string) (*drills.Evaluation, error) {
	if f.err != nil {
		return nil, f.err
	}
	ev := f.ev
	return &ev, nil
}

type fakeDeriver struct{ err error }

func (f *fakeDeriver) Derive(_ context.Context, _, struggle string) (*objective.Derived, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &objective.Derived{Objective: "objective for " + struggle, Question: "How do you want to practice?"}, nil
}

type fakeSnapshots struct {
	mu       sync.Mutex
	count    int
	appended []store.DrillSetSnapshotData
}

func (f *fakeSnapshots) Append(_ context.Context, data store.DrillSetSnapshotData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, data)
	return nil
}

func (f *fakeSnapshots) CountSince(context.Context, string, time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count, nil
}

func openItems(n int) []drills.DrillItem {
	items := make([]drills.DrillItem, n)
	for i := range items {
		items[i] = drills.DrillItem{Kind: drills.KindOpen, Topic: "hooks", Question: "Q", CorrectAnswer: "A"}
	}
	return items
}

func newTestEngine(repo *memSessions, gen generator, eval openEvaluator, snaps store.SnapshotRepo, limit int) *Engine {
	registry := NewRegistry(repo, nil)
	saver := NewSaver(repo, time.Hour, nil)
	return NewEngine(registry, saver, gen, eval, &fakeDeriver{}, snaps, limit, nil)
}

func TestStartSession(t *testing.T) {
	repo := newMemSessions()
	e := newTestEngine(repo, nil, nil, nil, 0)

	res, err := e.StartSession(context.Background(), "u1", "trading", "day trading", "I panic sell")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if res.Objective == "" {
		t.Error("objective empty")
	}
	if len(res.Clarification.Options) != 4 {
		t.Errorf("options = %d, want 4", len(res.Clarification.Options))
	}
	if res.Clarification.Options[0].Key != "A" || res.Clarification.Options[3].Key != "D" {
		t.Error("options not lettered A-D")
	}

	raw, _ := e.Snapshot(context.Background(), "u1", "trading")
	var doc Doc
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Phase != PhaseClarify {
		t.Errorf("phase = %q, want clarify", doc.Phase)
	}
	if repo.puts == 0 {
		t.Error("clarify transition should save immediately")
	}
}

func TestStartSessionValidation(t *testing.T) {
	e := newTestEngine(newMemSessions(), nil, nil, nil, 0)

	_, err := e.StartSession(context.Background(), "u1", "trading", "ctx", "   ")
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "struggle" {
		t.Fatalf("err = %v, want ValidationError on struggle", err)
	}
}

func TestGenerateDrills(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, input drills.GenerateInput) (*drills.Result, error) {
		return &drills.Result{Items: openItems(input.ChunkSize)}, nil
	}}
	e := newTestEngine(newMemSessions(), gen, nil, &fakeSnapshots{}, 0)

	res, err := e.GenerateDrills(context.Background(), "u1", "reels", GenerateRequest{
		Struggle:           "weak hooks",
		Objective:          "stronger hooks",
		NicheContext:       "faceless reels",
		PracticePreference: "C",
	})
	if err != nil {
		t.Fatalf("GenerateDrills: %v", err)
	}
	if res.Plan.Mode != drillplan.ModeCoaching {
		t.Errorf("mode = %q, want coaching", res.Plan.Mode)
	}
	if len(res.Drills) != 4 {
		t.Errorf("drills = %d, want chunk of 4", len(res.Drills))
	}
	if !res.HasMore || res.NextCursor != "offset:4" {
		t.Errorf("continuation = (%v, %q), want (true, offset:4)", res.HasMore, res.NextCursor)
	}
}

func TestGenerateDrillsFixedModeNeverContinues(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, input drills.GenerateInput) (*drills.Result, error) {
		return &drills.Result{Items: openItems(input.ChunkSize)}, nil
	}}
	e := newTestEngine(newMemSessions(), gen, nil, &fakeSnapshots{}, 0)

	res, err := e.GenerateDrills(context.Background(), "u1", "reels", GenerateRequest{
		Struggle: "s", NicheContext: "n", PracticePreference: "D",
	})
	if err != nil {
		t.Fatalf("GenerateDrills: %v", err)
	}
	if res.HasMore || res.NextCursor != "" {
		t.Errorf("fixed stop rule must not continue, got (%v, %q)", res.HasMore, res.NextCursor)
	}
}

func TestGenerateDrillsAtTargetStops(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, input drills.GenerateInput) (*drills.Result, error) {
		return &drills.Result{Items: openItems(input.ChunkSize)}, nil
	}}
	e := newTestEngine(newMemSessions(), gen, nil, &fakeSnapshots{}, 0)

	res, err := e.GenerateDrills(context.Background(), "u1", "reels", GenerateRequest{
		Struggle: "s", NicheContext: "n", PracticePreference: "B",
		Cursor: "offset:5", ExistingCount: 5,
	})
	if err != nil {
		t.Fatalf("GenerateDrills: %v", err)
	}
	if res.HasMore || res.NextCursor != "" {
		t.Errorf("at target: continuation = (%v, %q), want none", res.HasMore, res.NextCursor)
	}
}

func TestGenerateDrillsAtTargetStopsWithoutCursor(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, input drills.GenerateInput) (*drills.Result, error) {
		return &drills.Result{Items: openItems(input.ChunkSize)}, nil
	}}
	e := newTestEngine(newMemSessions(), gen, nil, &fakeSnapshots{}, 0)

	// existingCount already at the test-mode target; no cursor supplied.
	res, err := e.GenerateDrills(context.Background(), "u1", "reels", GenerateRequest{
		Struggle: "s", NicheContext: "n", PracticePreference: "B",
		ExistingCount: 10,
	})
	if err != nil {
		t.Fatalf("GenerateDrills: %v", err)
	}
	if res.HasMore || res.NextCursor != "" {
		t.Errorf("at target without cursor: continuation = (%v, %q), want none", res.HasMore, res.NextCursor)
	}
}

func TestGenerateDrillsQuotaKeepsState(t *testing.T) {
	gen := &fakeGen{fn: func(context.Context, drills.GenerateInput) (*drills.Result, error) {
		t.Fatal("generator must not be called when quota is hit")
		return nil, nil
	}}
	snaps := &fakeSnapshots{count: 3}
	e := newTestEngine(newMemSessions(), gen, nil, snaps, 3)

	if _, err := e.StartSession(context.Background(), "u1", "reels", "n", "weak hooks"); err != nil {
		t.Fatal(err)
	}

	_, err := e.GenerateDrills(context.Background(), "u1", "reels", GenerateRequest{
		PracticePreference: "C", NicheContext: "n",
	})
	var qerr *QuotaError
	if !errors.As(err, &qerr) {
		t.Fatalf("err = %v, want QuotaError", err)
	}
	if qerr.Limit != 3 || qerr.CompletedToday != 3 {
		t.Errorf("quota = %+v", qerr)
	}

	raw, _ := e.Snapshot(context.Background(), "u1", "reels")
	var doc Doc
	_ = json.Unmarshal(raw, &doc)
	if doc.Phase != PhaseClarify {
		t.Errorf("phase = %q, want clarify preserved on quota block", doc.Phase)
	}
	if doc.Struggle != "weak hooks" {
		t.Errorf("struggle = %q, want preserved", doc.Struggle)
	}
}

func TestRegenerationPreservesContextFields(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, input drills.GenerateInput) (*drills.Result, error) {
		return &drills.Result{Items: openItems(input.ChunkSize)}, nil
	}}
	eval := &fakeEval{ev: drills.Evaluation{Correct: true, Quality: "solid", Topic: "hooks"}}
	e := newTestEngine(newMemSessions(), gen, eval, &fakeSnapshots{}, 0)
	ctx := context.Background()

	req := GenerateRequest{Struggle: "weak hooks", Objective: "stronger hooks", NicheContext: "reels", PracticePreference: "C"}
	if _, err := e.GenerateDrills(ctx, "u1", "reels", req); err != nil {
		t.Fatal(err)
	}
	if _, err := e.SubmitAnswer(ctx, "u1", "reels", 0, "a long considered answer", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Continue(ctx, "u1", "reels"); err != nil {
		t.Fatal(err)
	}

	if _, err := e.GenerateDrills(ctx, "u1", "reels", GenerateRequest{PracticePreference: "C"}); err != nil {
		t.Fatal(err)
	}

	raw, _ := e.Snapshot(ctx, "u1", "reels")
	var doc Doc
	_ = json.Unmarshal(raw, &doc)
	if doc.CurrentIndex != 0 {
		t.Errorf("currentIndex = %d, want 0 after regeneration", doc.CurrentIndex)
	}
	if len(doc.UserAnswers) != 0 || len(doc.Evaluations) != 0 || len(doc.SelectedOptions) != 0 {
		t.Error("answer maps should be emptied on regeneration")
	}
	if doc.Struggle != "weak hooks" || doc.Objective != "stronger hooks" || doc.PracticePreference != "C" {
		t.Errorf("context fields changed: %q %q %q", doc.Struggle, doc.Objective, doc.PracticePreference)
	}
}

func TestContinueRoundRobin(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, input drills.GenerateInput) (*drills.Result, error) {
		return &drills.Result{Items: openItems(input.ChunkSize)}, nil
	}}
	e := newTestEngine(newMemSessions(), gen, nil, &fakeSnapshots{}, 0)
	ctx := context.Background()

	if _, err := e.GenerateDrills(ctx, "u1", "reels", GenerateRequest{
		Struggle: "s", NicheContext: "n", PracticePreference: "C",
	}); err != nil {
		t.Fatal(err)
	}

	var idx int
	var err error
	for i := 0; i < 4; i++ {
		idx, err = e.Continue(ctx, "u1", "reels")
		if err != nil {
			t.Fatal(err)
		}
	}
	if idx != 0 {
		t.Errorf("after N continues index = %d, want back at 0", idx)
	}
}

func TestSubmitAnswerModeMismatch(t *testing.T) {
	items := []drills.DrillItem{
		{Kind: drills.KindMultipleChoice, Topic: "risk_sizing", Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectOptionIndex: 0},
		{Kind: drills.KindMultipleChoice, Topic: "risk_sizing", Question: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectOptionIndex: 0},
	}
	gen := &fakeGen{fn: func(context.Context, drills.GenerateInput) (*drills.Result, error) {
		return &drills.Result{Items: items}, nil
	}}
	e := newTestEngine(newMemSessions(), gen, nil, &fakeSnapshots{}, 0)
	ctx := context.Background()

	if _, err := e.GenerateDrills(ctx, "u1", "trading", GenerateRequest{
		Struggle: "s", NicheContext: "n", PracticePreference: "B",
	}); err != nil {
		t.Fatal(err)
	}

	wrong := 3
	if _, err := e.SubmitAnswer(ctx, "u1", "trading", 0, "", &wrong); err != nil {
		t.Fatal(err)
	}
	if _, err := e.SubmitAnswer(ctx, "u1", "trading", 1, "", &wrong); err != nil {
		t.Fatal(err)
	}

	raw, _ := e.Snapshot(ctx, "u1", "trading")
	var doc Doc
	_ = json.Unmarshal(raw, &doc)
	if !doc.Signals.ModeMismatch {
		t.Error("two misses on one topic in test mode should flag mode mismatch")
	}
	if doc.Signals.RecommendedMode != drillplan.ModeWalkthrough {
		t.Errorf("recommendedMode = %q, want walkthrough", doc.Signals.RecommendedMode)
	}
}

func TestChecklistSetupGate(t *testing.T) {
	builderItem := drills.DrillItem{Kind: drills.KindChecklist, Title: "Launch", Items: make([]drills.ChecklistStep, 9)}
	for i := range builderItem.Items {
		builderItem.Items[i] = drills.ChecklistStep{Title: "step", Instruction: "do"}
	}
	gen := &fakeGen{fn: func(context.Context, drills.GenerateInput) (*drills.Result, error) {
		return &drills.Result{Items: []drills.DrillItem{builderItem}}, nil
	}}
	e := newTestEngine(newMemSessions(), gen, nil, &fakeSnapshots{}, 0)
	ctx := context.Background()

	res, err := e.GenerateDrills(ctx, "u1", "fitness", GenerateRequest{
		Struggle: "s", NicheContext: "n", PracticePreference: "A",
		ChecklistSetup: &checklist.Setup{Goal: "deadlift 100kg"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Checklist == nil || res.Checklist.Kind != "checklist_setup" {
		t.Fatalf("payload = %+v, want checklist_setup", res.Checklist)
	}
	if len(res.Checklist.Questions) != 3 {
		t.Errorf("questions = %d, want 3 remaining", len(res.Checklist.Questions))
	}
	if gen.calls != 0 {
		t.Error("generator must not run during setup")
	}

	res, err = e.GenerateDrills(ctx, "u1", "fitness", GenerateRequest{
		PracticePreference: "A",
		ChecklistSetup:     &checklist.Setup{Location: "home gym", Constraints: "3x week", Level: "novice"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Checklist == nil || res.Checklist.Kind != "checklist_builder" {
		t.Fatalf("payload = %+v, want checklist_builder", res.Checklist)
	}
	if len(res.Checklist.Steps) != 9 {
		t.Errorf("steps = %d, want 9", len(res.Checklist.Steps))
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want exactly 1 once setup is complete", gen.calls)
	}
}

func TestChecklistStepClamps(t *testing.T) {
	builderItem := drills.DrillItem{Kind: drills.KindChecklist, Items: make([]drills.ChecklistStep, 8)}
	gen := &fakeGen{fn: func(context.Context, drills.GenerateInput) (*drills.Result, error) {
		return &drills.Result{Items: []drills.DrillItem{builderItem}}, nil
	}}
	e := newTestEngine(newMemSessions(), gen, nil, &fakeSnapshots{}, 0)
	ctx := context.Background()

	if _, err := e.GenerateDrills(ctx, "u1", "fitness", GenerateRequest{
		Struggle: "s", NicheContext: "n", PracticePreference: "A",
		ChecklistSetup: &checklist.Setup{Goal: "g", Location: "l", Constraints: "c", Level: "v"},
	}); err != nil {
		t.Fatal(err)
	}

	if cur, _ := e.ChecklistStep(ctx, "u1", "fitness", -1); cur != 0 {
		t.Errorf("back at start: cursor = %d, want clamped to 0", cur)
	}
	var cur int
	for i := 0; i < 20; i++ {
		cur, _ = e.ChecklistStep(ctx, "u1", "fitness", 1)
	}
	if cur != 8 {
		t.Errorf("cursor = %d, want clamped to step count 8", cur)
	}
}

func TestGenerationSuperseded(t *testing.T) {
	e := &Engine{}
	inner := &fakeGen{fn: func(_ context.Context, input drills.GenerateInput) (*drills.Result, error) {
		return &drills.Result{Items: openItems(input.ChunkSize)}, nil
	}}

	var outerStarted bool
	outer := &fakeGen{}
	outer.fn = func(ctx context.Context, input drills.GenerateInput) (*drills.Result, error) {
		if !outerStarted {
			outerStarted = true
			// A second request lands while this one is in flight.
			e.generator = inner
			if _, err := e.GenerateDrills(ctx, "u1", "reels", GenerateRequest{
				Struggle: "s", NicheContext: "n", PracticePreference: "C",
			}); err != nil {
				t.Errorf("inner generate: %v", err)
			}
			e.generator = outer
		}
		return &drills.Result{Items: openItems(1)}, nil
	}

	repo := newMemSessions()
	*e = *newTestEngine(repo, outer, nil, &fakeSnapshots{}, 0)
	e.generator = outer

	_, err := e.GenerateDrills(context.Background(), "u1", "reels", GenerateRequest{
		Struggle: "s", NicheContext: "n", PracticePreference: "C",
	})
	if !errors.Is(err, ErrGenerationSuperseded) {
		t.Fatalf("err = %v, want ErrGenerationSuperseded", err)
	}

	raw, _ := e.Snapshot(context.Background(), "u1", "reels")
	var doc Doc
	_ = json.Unmarshal(raw, &doc)
	if len(doc.Drills) != 4 {
		t.Errorf("drills = %d, want the newer request's 4 kept", len(doc.Drills))
	}
}

func TestMarkCompletedDedup(t *testing.T) {
	e := newTestEngine(newMemSessions(), nil, nil, nil, 0)
	ctx := context.Background()

	e.MarkCompleted(ctx, "u1", "reels", "cc-1")
	e.MarkCompleted(ctx, "u1", "reels", "cc-1")
	e.MarkCompleted(ctx, "u1", "reels", "cc-2")

	raw, _ := e.Snapshot(ctx, "u1", "reels")
	var doc Doc
	_ = json.Unmarshal(raw, &doc)
	if doc.DrillSetsCompleted != 2 {
		t.Errorf("drillSetsCompleted = %d, want 2", doc.DrillSetsCompleted)
	}
}

func TestResetClearsInPlace(t *testing.T) {
	repo := newMemSessions()
	e := newTestEngine(repo, nil, nil, nil, 0)
	ctx := context.Background()

	if _, err := e.StartSession(ctx, "u1", "reels", "n", "weak hooks"); err != nil {
		t.Fatal(err)
	}
	if err := e.Reset(ctx, "u1", "reels"); err != nil {
		t.Fatal(err)
	}

	raw, _ := e.Snapshot(ctx, "u1", "reels")
	var doc Doc
	_ = json.Unmarshal(raw, &doc)
	if doc.Phase != PhaseIdle || doc.Struggle != "" || doc.Objective != "" {
		t.Errorf("doc not cleared: %+v", doc)
	}
	if repo.docs["u1/reels"] == nil {
		t.Error("reset should persist the cleared document, not delete the row")
	}
}

func TestRestoreRejectsBadDocument(t *testing.T) {
	e := newTestEngine(newMemSessions(), nil, nil, nil, 0)

	err := e.Restore(context.Background(), "u1", "reels", json.RawMessage(`not json`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
