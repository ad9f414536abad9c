package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/lifelens/lifelens-cli/internal/models"
)

// The habit endpoint speaks its own dialect: integer row ids, a nullable
// completed-dates column, and a "userid" key on writes. The adapters below
// keep that dialect out of the rest of the client.

type habitPayload struct {
	UserID         string   `json:"userid"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Frequency      string   `json:"frequency"`
	Category       string   `json:"category"`
	TargetCount    int      `json:"target_count"`
	CurrentStreak  int      `json:"current_streak"`
	CompletedDates []string `json:"completed_dates"`
}

type habitRow struct {
	ID             int       `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	TargetCount    int       `json:"target_count"`
	CurrentStreak  int       `json:"current_streak"`
	CompletedDates []string  `json:"completed_dates"`
	Category       string    `json:"category"`
	CreatedAt      time.Time `json:"created_at"`
}

func toHabitPayload(userID string, h models.Habit) habitPayload {
	dates := h.CompletedDates
	if dates == nil {
		dates = []string{}
	}
	return habitPayload{
		UserID:         userID,
		Name:           h.Name,
		Description:    h.Description,
		Frequency:      h.Frequency,
		Category:       h.Category,
		TargetCount:    h.TargetCount,
		CurrentStreak:  h.CurrentStreak,
		CompletedDates: dates,
	}
}

func fromHabitRow(r habitRow) models.Habit {
	dates := r.CompletedDates
	if dates == nil {
		dates = []string{}
	}
	return models.Habit{
		ID:             strconv.Itoa(r.ID),
		Name:           r.Name,
		Description:    r.Description,
		Category:       r.Category,
		TargetCount:    r.TargetCount,
		CurrentStreak:  r.CurrentStreak,
		CompletedDates: dates,
		CreatedAt:      r.CreatedAt,
	}
}

// SaveHabit pushes one habit to the backend.
func (c *Client) SaveHabit(ctx context.Context, h models.Habit) error {
	path := "/api/v1/users/habit/" + c.UserID()
	return c.do(ctx, http.MethodPost, path, toHabitPayload(c.UserID(), h), nil)
}

// ListHabits fetches the user's remote habits in canonical form.
func (c *Client) ListHabits(ctx context.Context) ([]models.Habit, error) {
	var rows []habitRow
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/habit/"+c.UserID(), nil, &rows); err != nil {
		return nil, err
	}
	habits := make([]models.Habit, 0, len(rows))
	for _, r := range rows {
		habits = append(habits, fromHabitRow(r))
	}
	return habits, nil
}
