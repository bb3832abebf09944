package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drillwise/drillwise/internal/drills"
	"github.com/drillwise/drillwise/internal/identity"
	"github.com/drillwise/drillwise/internal/objective"
	"github.com/drillwise/drillwise/internal/progress"
	"github.com/drillwise/drillwise/internal/session"
	"github.com/drillwise/drillwise/internal/store"
)

type memSessions struct {
	mu   sync.Mutex
	docs map[string]json.RawMessage
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
	return nil
}

type memLedger struct {
	mu     sync.Mutex
	events map[string]store.ProgressEventData
}

func (m *memLedger) InsertIfAbsent(_ context.Context, data store.ProgressEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[data.ClientCompletionID]; !ok {
		m.events[data.ClientCompletionID] = data
	}
	return nil
}

func (m *memLedger) Count(_ context.Context, userID, niche, customNiche string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.events {
		if e.UserID == userID && e.Niche == niche && e.CustomNiche == customNiche {
			n++
		}
	}
	return n, nil
}

type fakeGen struct {
	err   error
	items func(chunk int) []drills.DrillItem
}

func (f *fakeGen) Generate(_ context.Context, input drills.GenerateInput) (*drills.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &drills.Result{Items: f.items(input.ChunkSize)}, nil
}

type fakeEval struct{}

func (fakeEval) EvaluateOpen(context.Context, *drills.DrillItem, string) (*drills.Evaluation, error) {
	return &drills.Evaluation{Correct: true, Quality: "solid", Feedback: "Good."}, nil
}

type fakeDeriver struct{}

func (fakeDeriver) Derive(_ context.Context, _, struggle string) (*objective.Derived, error) {
	return &objective.Derived{Objective: "practice " + struggle, Question: "Pick a format."}, nil
}

type fakeSnapshots struct {
	mu    sync.Mutex
	count int
}

func (f *fakeSnapshots) Append(context.Context, store.DrillSetSnapshotData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++
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

func newTestHandler(t *testing.T, gen *fakeGen, limit int, snaps *fakeSnapshots) http.Handler {
	t.Helper()
	repo := &memSessions{docs: make(map[string]json.RawMessage)}
	registry := session.NewRegistry(repo, nil)
	saver := session.NewSaver(repo, time.Hour, nil)
	engine := session.NewEngine(registry, saver, gen, fakeEval{}, fakeDeriver{}, snaps, limit, nil)
	recorder := progress.NewRecorder(&memLedger{events: make(map[string]store.ProgressEventData)}, nil)
	return NewServer(engine, recorder, identity.DevVerifier{}, nil).Routes()
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func defaultGen() *fakeGen {
	return &fakeGen{items: openItems}
}

func TestHealthzNoAuth(t *testing.T) {
	h := newTestHandler(t, defaultGen(), 0, &fakeSnapshots{})
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	h := newTestHandler(t, defaultGen(), 0, &fakeSnapshots{})
	req := httptest.NewRequest("GET", "/api/session?niche=reels", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UNAUTHORIZED", body.Error)
}

func TestSessionStart(t *testing.T) {
	h := newTestHandler(t, defaultGen(), 0, &fakeSnapshots{})

	w := doRequest(t, h, "POST", "/api/session-start", map[string]string{
		"nicheKey": "reels", "nicheContext": "faceless reels", "struggle": "weak hooks",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res session.StartResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Objective)
	require.NotNil(t, res.Clarification)
	assert.Len(t, res.Clarification.Options, 4)
}

func TestSessionStartValidation(t *testing.T) {
	h := newTestHandler(t, defaultGen(), 0, &fakeSnapshots{})

	w := doRequest(t, h, "POST", "/api/session-start", map[string]string{
		"nicheKey": "reels", "struggle": "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION", body.Error)
}

func TestGenerateDrills(t *testing.T) {
	h := newTestHandler(t, defaultGen(), 0, &fakeSnapshots{})

	w := doRequest(t, h, "POST", "/api/generate-drills", map[string]any{
		"nicheKey": "reels", "nicheContext": "faceless reels",
		"struggle": "weak hooks", "practicePreference": "C",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Drills     []drills.DrillItem `json:"drills"`
		HasMore    bool               `json:"hasMore"`
		NextCursor string             `json:"nextCursor"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Drills, 4)
	assert.True(t, res.HasMore)
	assert.Equal(t, "offset:4", res.NextCursor)
}

func TestGenerateDrillsQuota(t *testing.T) {
	h := newTestHandler(t, defaultGen(), 2, &fakeSnapshots{count: 2})

	w := doRequest(t, h, "POST", "/api/generate-drills", map[string]any{
		"nicheKey": "reels", "nicheContext": "n",
		"struggle": "s", "practicePreference": "C",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "FREE_LIMIT", body.Error)
	assert.Equal(t, 2, body.Limit)
	assert.Equal(t, 2, body.CompletedToday)
}

func TestGenerateDrillsParseError(t *testing.T) {
	gen := &fakeGen{err: &drills.ParseError{Reason: "response is not valid JSON"}}
	h := newTestHandler(t, gen, 0, &fakeSnapshots{})

	w := doRequest(t, h, "POST", "/api/generate-drills", map[string]any{
		"nicheKey": "reels", "nicheContext": "n",
		"struggle": "s", "practicePreference": "C",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "GENERATION_PARSE", body.Error)
}

func TestProgressCompleteIdempotent(t *testing.T) {
	h := newTestHandler(t, defaultGen(), 0, &fakeSnapshots{})

	body := map[string]string{"niche": "reels", "clientCompletionId": "cc-1"}
	w1 := doRequest(t, h, "POST", "/api/progress/complete", body)
	w2 := doRequest(t, h, "POST", "/api/progress/complete", body)
	require.Equal(t, http.StatusOK, w1.Code)
	require.Equal(t, http.StatusOK, w2.Code)

	var r1, r2 struct {
		OK    bool   `json:"ok"`
		Niche string `json:"niche"`
		Total int    `json:"totalCompletedInNiche"`
	}
	require.NoError(t, json.Unmarshal(w1.Body.Bytes(), &r1))
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &r2))
	assert.True(t, r1.OK)
	assert.Equal(t, 1, r1.Total)
	assert.Equal(t, 1, r2.Total, "retried completion must not double-count")
}

func TestSessionRoundTrip(t *testing.T) {
	h := newTestHandler(t, defaultGen(), 0, &fakeSnapshots{})

	w := doRequest(t, h, "POST", "/api/session-start", map[string]string{
		"nicheKey": "reels", "nicheContext": "n", "struggle": "weak hooks",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, h, "GET", "/api/session?niche=reels", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc session.Doc
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, session.PhaseClarify, doc.Phase)
	assert.Equal(t, "weak hooks", doc.Struggle)

	w = doRequest(t, h, "POST", "/api/session/reset", map[string]string{"nicheKey": "reels"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, h, "GET", "/api/session?niche=reels", nil)
	doc = session.Doc{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, session.PhaseIdle, doc.Phase)
	assert.Empty(t, doc.Struggle)
}

func TestSubmitAnswerAndContinue(t *testing.T) {
	h := newTestHandler(t, defaultGen(), 0, &fakeSnapshots{})

	w := doRequest(t, h, "POST", "/api/generate-drills", map[string]any{
		"nicheKey": "reels", "nicheContext": "n",
		"struggle": "s", "practicePreference": "C",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, h, "POST", "/api/submit-answer", map[string]any{
		"nicheKey": "reels", "index": 0, "answer": "a thought-through answer",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var ev drills.Evaluation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ev))
	assert.True(t, ev.Correct)

	w = doRequest(t, h, "POST", "/api/continue", map[string]string{"nicheKey": "reels"})
	require.Equal(t, http.StatusOK, w.Code)

	var cont struct {
		CurrentIndex int `json:"currentIndex"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cont))
	assert.Equal(t, 1, cont.CurrentIndex)
}
