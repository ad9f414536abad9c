package models

import (
	"testing"
	"time"
)

func TestLifeGoalsEmpty(t *testing.T) {
	g := EmptyLifeGoals("user-1")
	if !g.Empty() {
		t.Error("synthesized record should be empty")
	}
	if g.CreatedAt.IsZero() || g.UpdatedAt.IsZero() {
		t.Error("synthesized record should carry non-zero timestamps")
	}
	if g.ShortTerm == nil || g.LongTerm == nil || g.Priorities == nil {
		t.Error("synthesized arrays should be non-nil")
	}

	g.LongTerm = append(g.LongTerm, "write a novel")
	if g.Empty() {
		t.Error("record with a long-term goal should not be empty")
	}
}

func TestAIPlanMissing(t *testing.T) {
	var p AIPlan
	if !p.Missing() {
		t.Error("zero plan should be missing")
	}

	id, text := "plan-1", "# Plan"
	p = AIPlan{ID: &id, GeneratedPlan: &text}
	if p.Missing() {
		t.Error("populated plan should not be missing")
	}

	p.GeneratedPlan = nil
	if !p.Missing() {
		t.Error("plan without text should be missing")
	}
}

func TestBuildGoalCards(t *testing.T) {
	goals := LifeGoals{
		ShortTerm: []string{"run 10k", "read weekly"},
		LongTerm:  []string{"buy a house", "start a business", "retire early"},
		Timeframe: "Gradual",
		CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	cards := BuildGoalCards(goals)
	if len(cards) != 3 {
		t.Fatalf("len(cards) = %d, want 3 (max of the two lists)", len(cards))
	}

	if cards[0].Title != "buy a house" || cards[0].Description != "run 10k" {
		t.Errorf("card 0 = %+v", cards[0])
	}
	if cards[0].Type != GoalShortTerm {
		t.Errorf("card 0 type = %v", cards[0].Type)
	}

	// Past the end of the short-term list: generic description, long-term type.
	if cards[2].Description != "Short-term Goal" {
		t.Errorf("card 2 description = %q", cards[2].Description)
	}
	if cards[2].Type != GoalLongTerm {
		t.Errorf("card 2 type = %v", cards[2].Type)
	}

	for _, c := range cards {
		if c.Category != "Gradual" {
			t.Errorf("card %s category = %q", c.ID, c.Category)
		}
		if c.Date != "Aug 1" {
			t.Errorf("card %s date = %q", c.ID, c.Date)
		}
	}
}

func TestBuildGoalCardsEmpty(t *testing.T) {
	if cards := BuildGoalCards(EmptyLifeGoals("u")); len(cards) != 0 {
		t.Errorf("empty record should produce no cards, got %d", len(cards))
	}
}
