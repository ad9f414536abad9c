package models

import (
	"strconv"
	"time"
)

// GoalType distinguishes the two halves of a life-goal record
type GoalType string

const (
	GoalShortTerm GoalType = "short_term"
	GoalLongTerm  GoalType = "long_term"
)

// LifeGoals is the single per-user goal record held by the backend. A user
// has at most one; "empty" means both term arrays are empty.
type LifeGoals struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ShortTerm  []string  `json:"short_term"`
	LongTerm   []string  `json:"long_term"`
	Priorities []string  `json:"priorities"`
	Timeframe  string    `json:"timeframe"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Empty reports whether the record holds no goals.
func (g LifeGoals) Empty() bool {
	return len(g.ShortTerm) == 0 && len(g.LongTerm) == 0
}

// EmptyLifeGoals synthesizes the record returned when the backend has no
// goal data for the user ("not found is not an error").
func EmptyLifeGoals(userID string) LifeGoals {
	now := time.Now().UTC()
	return LifeGoals{
		UserID:     userID,
		ShortTerm:  []string{},
		LongTerm:   []string{},
		Priorities: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AIPlan is the generated plan logically joined to the life-goal record by
// convention rather than a foreign key. Nil fields mean "not generated".
type AIPlan struct {
	ID            *string `json:"id"`
	GeneratedPlan *string `json:"generated_plan"`
}

// Missing reports whether the plan has not been generated (or was fetched
// from a user with no plan data).
func (p AIPlan) Missing() bool {
	return p.ID == nil || p.GeneratedPlan == nil
}

// AIPlanRecord is the stored plan row as returned by the plan listing
// endpoint.
type AIPlanRecord struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	GeneratedPlan string    `json:"generated_plan"`
	CreatedAt     time.Time `json:"created_at"`
}

// GoalCard is the display model: one card per interleaved short/long-term
// pair, all backed by the single LifeGoals record. Card ids are synthetic
// and must not be used for deletion; the backing record's plan id is the
// only deletable identity.
type GoalCard struct {
	ID          string
	Title       string
	Description string
	Date        string
	Category    string
	Type        GoalType
}

// BuildGoalCards interleaves short- and long-term entries into display
// cards. Positions past the end of the shorter list fall back to a generic
// label, matching the record's loose pairing of the two arrays.
func BuildGoalCards(goals LifeGoals) []GoalCard {
	n := len(goals.LongTerm)
	if len(goals.ShortTerm) > n {
		n = len(goals.ShortTerm)
	}

	date := goals.CreatedAt.Format("Jan 2")
	cards := make([]GoalCard, 0, n)
	for i := 0; i < n; i++ {
		title := "Long-term Goal"
		if i < len(goals.LongTerm) {
			title = goals.LongTerm[i]
		}
		desc := "Short-term Goal"
		if i < len(goals.ShortTerm) {
			desc = goals.ShortTerm[i]
		}
		typ := GoalLongTerm
		if i < len(goals.ShortTerm) {
			typ = GoalShortTerm
		}
		cards = append(cards, GoalCard{
			ID:          "goal-" + strconv.Itoa(i),
			Title:       title,
			Description: desc,
			Date:        date,
			Category:    goals.Timeframe,
			Type:        typ,
		})
	}
	return cards
}
