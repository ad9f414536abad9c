package models

import "time"

// MoodEntry is one logged mood. The local store keys entries by date so a
// second log on the same day overwrites the first; the remote mood endpoint
// simply appends.
type MoodEntry struct {
	ID        string    `json:"id"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note,omitempty"`
	Date      string    `json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}

// MoodRecord is a mood row as stored by the backend.
type MoodRecord struct {
	ID        int       `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// UpsertMood replaces any same-day entry in the list, otherwise appends.
// The returned slice is a new value; the input is not mutated.
func UpsertMood(entries []MoodEntry, entry MoodEntry) []MoodEntry {
	out := make([]MoodEntry, 0, len(entries)+1)
	replaced := false
	for _, e := range entries {
		if e.Date == entry.Date {
			out = append(out, entry)
			replaced = true
			continue
		}
		out = append(out, e)
	}
	if !replaced {
		out = append(out, entry)
	}
	return out
}
