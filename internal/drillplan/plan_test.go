package drillplan

import "testing"

func TestResolve_ChunkNeverExceedsTarget(t *testing.T) {
	for _, mode := range []Mode{ModeChecklist, ModeTest, ModeCoaching, ModeWalkthrough} {
		p := Resolve(mode)
		if p.StopRule == StopFixed {
			continue
		}
		if p.ChunkSize > p.TargetCount {
			t.Errorf("%s: chunkSize %d > targetCount %d", mode, p.ChunkSize, p.TargetCount)
		}
	}
}

func TestResolve_FixedModes(t *testing.T) {
	for _, mode := range []Mode{ModeChecklist, ModeWalkthrough} {
		p := Resolve(mode)
		if p.StopRule != StopFixed {
			t.Errorf("%s: expected fixed stop rule, got %s", mode, p.StopRule)
		}
	}
}

func TestParsePreference(t *testing.T) {
	cases := map[string]Mode{
		"A":           ModeChecklist,
		"B":           ModeTest,
		"C":           ModeCoaching,
		"D":           ModeWalkthrough,
		"walkthrough": ModeWalkthrough,
	}
	for pref, want := range cases {
		got, err := ParsePreference(pref)
		if err != nil {
			t.Fatalf("ParsePreference(%q): %v", pref, err)
		}
		if got != want {
			t.Errorf("ParsePreference(%q) = %s, want %s", pref, got, want)
		}
	}

	if _, err := ParsePreference("E"); err == nil {
		t.Error("expected error for unknown preference")
	}
}

func TestContinuation(t *testing.T) {
	test := Resolve(ModeTest)

	hasMore, cursor := Continuation(test, 5)
	if !hasMore {
		t.Error("expected hasMore below target")
	}
	if cursor != "offset:5" {
		t.Errorf("cursor = %q, want offset:5", cursor)
	}

	// At target, continuation stops regardless of mode.
	hasMore, cursor = Continuation(test, test.TargetCount)
	if hasMore || cursor != "" {
		t.Errorf("at target: hasMore=%v cursor=%q, want false/empty", hasMore, cursor)
	}

	// Fixed plans never continue.
	hasMore, cursor = Continuation(Resolve(ModeWalkthrough), 0)
	if hasMore || cursor != "" {
		t.Errorf("fixed: hasMore=%v cursor=%q, want false/empty", hasMore, cursor)
	}
}
