package checklist

import (
	"reflect"
	"testing"
)

func TestMissingFields(t *testing.T) {
	var nilSetup *Setup
	if got := nilSetup.MissingFields(); len(got) != 4 {
		t.Errorf("nil setup missing %d fields, want 4", len(got))
	}

	s := &Setup{Goal: "launch an online store", Level: "beginner"}
	want := []string{"location", "constraints"}
	if got := s.MissingFields(); !reflect.DeepEqual(got, want) {
		t.Errorf("missing = %v, want %v", got, want)
	}

	s.Location = "shopify"
	s.Constraints = "under $500"
	if !s.Complete() {
		t.Error("expected complete setup")
	}
}

func TestQuestionsFor(t *testing.T) {
	qs := QuestionsFor([]string{"goal", "level"})
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Field != "goal" || qs[1].Field != "level" {
		t.Errorf("unexpected fields: %+v", qs)
	}
	for _, q := range qs {
		if q.Question == "" {
			t.Errorf("empty question for %s", q.Field)
		}
	}
}

func TestClampCursor(t *testing.T) {
	cases := []struct {
		cursor, steps, want int
	}{
		{-1, 10, 0},
		{0, 10, 0},
		{5, 10, 5},
		{10, 10, 10},
		{11, 10, 10},
	}
	for _, c := range cases {
		if got := ClampCursor(c.cursor, c.steps); got != c.want {
			t.Errorf("ClampCursor(%d, %d) = %d, want %d", c.cursor, c.steps, got, c.want)
		}
	}
}
