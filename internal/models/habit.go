package models

import "time"

// Habit is the canonical habit record used everywhere in the client. The
// remote habit endpoint speaks a slightly different dialect; the mapping
// lives at the service boundary, not here.
type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Frequency      string    `json:"frequency"`
	Category       string    `json:"category"`
	TargetCount    int       `json:"target_count"`
	CurrentStreak  int       `json:"current_streak"`
	BestStreak     int       `json:"best_streak"`
	CompletedDates []string  `json:"completed_dates"`
	CreatedAt      time.Time `json:"created_at"`
}

// MarkComplete records a completion for the given day (YYYY-MM-DD) and
// advances the streaks. Marking the same day twice is a no-op, so streaks
// and the completion log never double-count.
func (h *Habit) MarkComplete(day string) bool {
	if h.CompletedOn(day) {
		return false
	}
	h.CompletedDates = append(h.CompletedDates, day)
	h.CurrentStreak++
	if h.CurrentStreak > h.BestStreak {
		h.BestStreak = h.CurrentStreak
	}
	return true
}

// CompletedOn reports whether the habit was completed on the given day.
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// CompletedToday reports whether the habit was completed today.
func (h Habit) CompletedToday() bool {
	return h.CompletedOn(time.Now().Format("2006-01-02"))
}
